package httpwire

// Result is the outcome of a parse step. It is a closed set: callers
// branch on it instead of on an error interface, so that reporting a parse
// outcome never allocates.
type Result uint8

const (
	// resAdvance is an internal sequencing signal only: a sub-stage
	// completed and the façade should move on to the next one. It is
	// never returned from Request.Parse or Response.Parse.
	resAdvance Result = iota

	// Complete means the message (request or response) is fully parsed.
	Complete
	// Incomplete means more bytes are needed; re-invoke Parse after
	// appending bytes to the same buffer (never prepending or rewriting
	// bytes already consumed).
	Incomplete

	// ErrMethodUnknown: the request method didn't match any recognised
	// verb.
	ErrMethodUnknown
	// ErrVersionMalformed: the bytes don't match the HTTP/1.X grammar or
	// its surrounding punctuation (trailing SP/CRLF).
	ErrVersionMalformed
	// ErrVersionUnknown: the version prefix matched but major != 1 or
	// minor is neither 0 nor 1.
	ErrVersionUnknown
	// ErrStatusMalformed: the status line's 3-digit code (or its
	// terminating SP) is malformed, or the code is zero.
	ErrStatusMalformed
	// ErrTooManyHeaders: the header list's fixed capacity was exhausted.
	ErrTooManyHeaders
	// ErrChunkMalformed: a chunk size line or its trailing CRLF violated
	// the chunked-encoding grammar.
	ErrChunkMalformed
)

var resultNames = [...]string{
	resAdvance:          "advance",
	Complete:            "complete",
	Incomplete:          "incomplete",
	ErrMethodUnknown:    "method_unknown",
	ErrVersionMalformed: "http_version_malformed",
	ErrVersionUnknown:   "http_version_unknown",
	ErrStatusMalformed:  "http_status_code_malformed",
	ErrTooManyHeaders:   "too_many_headers",
	ErrChunkMalformed:   "chunk_malformed",
}

// String implements the Stringer interface.
func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "invalid"
}

// IsError returns true for anything other than Complete or Incomplete.
func (r Result) IsError() bool {
	return r != Complete && r != Incomplete
}

package httpwire

// ResponseStage is how far a Response has progressed through parsing.
type ResponseStage uint8

const (
	PStart ResponseStage = iota
	PParsedVersion
	PParsedStatus
	PParsedReason
	PParsedHeaders
	PParsedBody
)

// Response incrementally parses an HTTP/1.x status line, headers, and
// (when framed) body out of a caller-owned byte buffer. See Request for
// the shared buffer-growth and zero-copy contract.
type Response struct {
	stage      ResponseStage
	pos        int
	version    Version
	statusCode int
	reason     Field

	headers HeaderList

	framing       bodyFraming
	contentLength uint64
	chunk         chunkState
	body          Field
}

// Init installs store as the Response's header backing array.
func (r *Response) Init(headerStore []Header) {
	r.headers.Init(headerStore)
}

// Reset returns r to its zero parsing state.
func (r *Response) Reset() {
	store := r.headers.hdrs
	*r = Response{}
	r.headers.hdrs = store
}

// Stage returns how far parsing has progressed.
func (r *Response) Stage() ResponseStage {
	return r.stage
}

// Version returns the parsed HTTP version.
func (r *Response) Version() Version {
	return r.version
}

// StatusCode returns the parsed 3-digit status code.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// Reason returns the reason phrase. Valid once Stage() >= PParsedReason.
func (r *Response) Reason() Field {
	return r.reason
}

// HeaderCount returns the number of parsed headers.
func (r *Response) HeaderCount() int {
	return r.headers.Len()
}

// HeaderAt returns the i-th header in insertion order.
func (r *Response) HeaderAt(i int) Header {
	return r.headers.At(i)
}

// Header looks up the first header named name, case-insensitively.
func (r *Response) Header(buf []byte, name string) (Field, bool) {
	return r.headers.Header(buf, name)
}

// ForEachHeader invokes f for every header in insertion order.
func (r *Response) ForEachHeader(f func(h Header) bool) {
	r.headers.ForEach(f)
}

// Body returns the decoded body, valid once Stage() == PParsedBody.
func (r *Response) Body() Field {
	return r.body
}

// Parse advances parsing as far as buf allows; see Request.Parse for the
// buffer-growth and Result contract.
func (r *Response) Parse(buf []byte) Result {
	if len(buf) == 0 {
		return Incomplete
	}

	if r.stage == PStart {
		v, pos, res := decodeVersion(buf, r.pos)
		if res != resAdvance {
			return res
		}
		n := len(buf)
		if pos >= n {
			return Incomplete
		}
		if buf[pos] != cSP {
			return ErrVersionMalformed
		}
		r.version = v
		r.pos = pos + 1
		r.stage = PParsedVersion
	}

	if r.stage == PParsedVersion {
		pos, res := r.parseStatusCode(buf)
		if res != resAdvance {
			return res
		}
		r.pos = pos
		r.stage = PParsedStatus
	}

	if r.stage == PParsedStatus {
		pos, res := r.parseReasonPhrase(buf)
		if res != resAdvance {
			return res
		}
		r.pos = pos
		r.stage = PParsedReason
	}

	if r.stage == PParsedReason {
		pos, framing, cl, res := parseHeaderBlock(buf, r.pos, &r.headers)
		r.pos = pos
		if res != resAdvance {
			return res
		}
		r.framing = framing
		r.contentLength = cl
		r.stage = PParsedHeaders
	}

	if r.stage == PParsedHeaders && r.framing != framingNone {
		var body Field
		var pos int
		var res Result
		switch r.framing {
		case framingContentLength:
			body, pos, res = decodeContentLengthBody(buf, r.pos, r.contentLength)
		case framingChunked:
			body, pos, res = decodeChunkedBody(buf, r.pos, &r.chunk)
		}
		if res != resAdvance {
			return res
		}
		r.body = body
		r.pos = pos
		r.stage = PParsedBody
	}

	return Complete
}

// parseStatusCode parses the 3 ASCII digits and trailing SP.
func (r *Response) parseStatusCode(buf []byte) (int, Result) {
	n := len(buf)
	pos := r.pos
	if pos+4 > n {
		return pos, Incomplete
	}
	d0, d1, d2 := buf[pos], buf[pos+1], buf[pos+2]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return pos, ErrStatusMalformed
	}
	code := int(d0-'0')*100 + int(d1-'0')*10 + int(d2-'0')
	if code == 0 {
		return pos, ErrStatusMalformed
	}
	if buf[pos+3] != cSP {
		return pos, ErrStatusMalformed
	}
	r.statusCode = code
	return pos + 4, resAdvance
}

// parseReasonPhrase consumes everything up to the terminating CRLF.
func (r *Response) parseReasonPhrase(buf []byte) (int, Result) {
	start := r.pos
	crIdx, ok := findCRLF(buf, start)
	if !ok {
		return start, Incomplete
	}
	r.reason.Set(start, crIdx)
	return crIdx + 2, resAdvance
}

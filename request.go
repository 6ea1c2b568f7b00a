package httpwire

// RequestStage is how far a Request has progressed through parsing.
type RequestStage uint8

const (
	RStart RequestStage = iota
	RParsedMethod
	RParsedURI
	RParsedVersion
	RParsedHeaders
	RParsedBody
)

// Request incrementally parses an HTTP/1.x request line, headers, and
// (when framed by Content-Length or chunked Transfer-Encoding) body out of
// a caller-owned byte buffer. Parse never copies or reorders bytes except
// for the in-place dechunking of a chunked body; every other accessor
// returns a Field view into the same buffer passed to Parse.
//
// A Request must be fed the same growing buffer across calls: bytes
// already consumed are never rewritten or prepended to, only appended.
type Request struct {
	stage   RequestStage
	pos     int
	method  Method
	uri     Field
	version Version

	headers HeaderList

	framing       bodyFraming
	contentLength uint64
	chunk         chunkState
	body          Field
}

// Init installs store as the Request's header backing array, raising its
// capacity beyond DefaultHeaderCap. Call it, if at all, before the first
// Parse.
func (r *Request) Init(headerStore []Header) {
	r.headers.Init(headerStore)
}

// Reset returns r to its zero parsing state so it can parse a new request.
// The header backing array installed by Init (if any) is kept.
func (r *Request) Reset() {
	store := r.headers.hdrs
	*r = Request{}
	r.headers.hdrs = store
}

// Stage returns how far parsing has progressed.
func (r *Request) Stage() RequestStage {
	return r.stage
}

// Method returns the parsed method. Valid once Stage() >= RParsedMethod.
func (r *Request) Method() Method {
	return r.method
}

// URI returns the parsed request-target. Valid once Stage() >= RParsedURI.
func (r *Request) URI() Field {
	return r.uri
}

// Version returns the parsed HTTP version. Valid once
// Stage() >= RParsedVersion.
func (r *Request) Version() Version {
	return r.version
}

// HeaderCount returns the number of parsed headers.
func (r *Request) HeaderCount() int {
	return r.headers.Len()
}

// HeaderAt returns the i-th header in insertion order.
func (r *Request) HeaderAt(i int) Header {
	return r.headers.At(i)
}

// Header looks up the first header named name, case-insensitively.
func (r *Request) Header(buf []byte, name string) (Field, bool) {
	return r.headers.Header(buf, name)
}

// ForEachHeader invokes f for every header in insertion order.
func (r *Request) ForEachHeader(f func(h Header) bool) {
	r.headers.ForEach(f)
}

// Body returns the decoded body, valid once Stage() == RParsedBody. A
// request with no Content-Length or chunked framing never reaches
// RParsedBody: it is reported Complete at RParsedHeaders with an empty body.
func (r *Request) Body() Field {
	return r.body
}

// Parse advances parsing as far as buf allows. buf must be the same
// buffer passed on every prior call to this Request, grown only by
// appending new bytes at the end; Parse never looks before its own
// cursor and never needs bytes to be re-presented.
//
// Result is Complete once the request (and any framed body) has been
// fully parsed, Incomplete if buf doesn't yet hold enough bytes to make
// progress, or one of the Err* values on a grammar violation.
func (r *Request) Parse(buf []byte) Result {
	if len(buf) == 0 {
		return Incomplete
	}

	if r.stage == RStart {
		m, pos, res := recognizeMethod(buf, r.pos)
		if res != resAdvance {
			return res
		}
		r.method = m
		r.pos = pos
		r.stage = RParsedMethod
	}

	if r.stage == RParsedMethod {
		pos, res := r.parseURI(buf)
		r.pos = pos
		if res != resAdvance {
			return res
		}
		r.stage = RParsedURI
	}

	if r.stage == RParsedURI {
		v, pos, res := decodeVersion(buf, r.pos)
		if res != resAdvance {
			return res
		}
		n := len(buf)
		if pos+1 >= n {
			return Incomplete
		}
		if buf[pos] != cCR || buf[pos+1] != cLF {
			return ErrVersionMalformed
		}
		r.version = v
		r.pos = pos + 2
		r.stage = RParsedVersion
	}

	if r.stage == RParsedVersion {
		pos, framing, cl, res := parseHeaderBlock(buf, r.pos, &r.headers)
		r.pos = pos
		if res != resAdvance {
			return res
		}
		r.framing = framing
		r.contentLength = cl
		r.stage = RParsedHeaders
	}

	if r.stage == RParsedHeaders && r.framing != framingNone {
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
		r.stage = RParsedBody
	}

	return Complete
}

// parseURI advances over the request-target up to (not including) the
// single SP that separates it from the HTTP version. r.pos is the live
// scan cursor: it is persisted even on an Incomplete return so a later
// call resumes the scan instead of re-walking already-seen bytes.
func (r *Request) parseURI(buf []byte) (int, Result) {
	n := len(buf)
	if r.uri.Offs == 0 && r.uri.Len == 0 {
		r.uri.Offs = OffsT(r.pos)
	}
	i := r.pos
	for {
		if i >= n {
			r.uri.Extend(i)
			return i, Incomplete
		}
		if buf[i] == cSP {
			r.uri.Extend(i)
			return i + 1, resAdvance
		}
		i++
	}
}

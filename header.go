package httpwire

import "github.com/intuitivelabs/bytescase"

// DefaultHeaderCap is the default fixed capacity of a HeaderList.
const DefaultHeaderCap = 16

// Header is a single parsed header line: a name and a value, both views
// into the buffer being parsed. The value has already been trimmed of
// surrounding optional whitespace.
type Header struct {
	Name  Field
	Value Field
}

// HeaderList is a fixed-capacity, insertion-ordered list of headers.
// Its backing array is caller-owned: the zero value has room for
// DefaultHeaderCap headers; call Init with a larger slice (e.g. len 64) up
// front to raise that ceiling.
type HeaderList struct {
	hdrs  []Header
	count int
}

// Init installs store as the backing array for hl, replacing the default
// one. It must be called, if at all, before the first Parse call.
func (hl *HeaderList) Init(store []Header) {
	hl.hdrs = store
	hl.count = 0
}

// Reset empties hl without discarding its backing array.
func (hl *HeaderList) Reset() {
	hl.count = 0
}

// Len returns the number of headers currently stored.
func (hl *HeaderList) Len() int {
	return hl.count
}

// At returns the i-th header in insertion order.
func (hl *HeaderList) At(i int) Header {
	return hl.hdrs[i]
}

// capacity returns hl's current backing-array capacity, lazily allocating
// the default-sized array on first use.
func (hl *HeaderList) capacity() int {
	if hl.hdrs == nil {
		hl.hdrs = make([]Header, DefaultHeaderCap)
	}
	return len(hl.hdrs)
}

// append stores one more header, returning false if hl is already at
// capacity.
func (hl *HeaderList) append(h Header) bool {
	if hl.count >= hl.capacity() {
		return false
	}
	hl.hdrs[hl.count] = h
	hl.count++
	return true
}

// Header looks up the first header named name (case-insensitive) and
// returns its value field plus whether it was found.
func (hl *HeaderList) Header(buf []byte, name string) (Field, bool) {
	for i := 0; i < hl.count; i++ {
		h := hl.hdrs[i]
		if bytescase.CmpEq(h.Name.Get(buf), []byte(name)) {
			return h.Value, true
		}
	}
	return Field{}, false
}

// ForEach invokes f for every stored header, in insertion order, stopping
// early if f returns false.
func (hl *HeaderList) ForEach(f func(h Header) bool) {
	for i := 0; i < hl.count; i++ {
		if !f(hl.hdrs[i]) {
			return
		}
	}
}

// bodyFraming is the body-length strategy deduced while parsing headers.
type bodyFraming uint8

const (
	framingNone bodyFraming = iota
	framingContentLength
	framingChunked
)

// parseHeaderBlock parses zero or more "Name: Value\r\n" lines starting at
// buf[pos], terminated by a bare CRLF, appending each to hl. It also
// inspects the first Transfer-Encoding/Content-Length header seen (first
// one wins; later duplicates are stored but not consulted for framing) to
// decide how the body, if any, should be decoded.
//
// It returns the position just past the terminating CRLF, the body
// framing decision and its Content-Length value (meaningful only when
// framing == framingContentLength), and a sequencing Result.
func parseHeaderBlock(buf []byte, pos int, hl *HeaderList) (int, bodyFraming, uint64, Result) {
	n := len(buf)
	framing := framingNone
	var contentLength uint64

	// Headers stored by an earlier call that returned Incomplete still take
	// part in the framing decision.
	for i := 0; i < hl.count && framing == framingNone; i++ {
		name := hl.hdrs[i].Name.Get(buf)
		value := hl.hdrs[i].Value.Get(buf)
		if ciEqualLower(name, "transfer-encoding") && ciEqualLower(value, "chunked") {
			framing = framingChunked
		} else if ciEqualLower(name, "content-length") && len(value) > 0 {
			framing = framingContentLength
			if cl, ok := parseDecimalUint(value); ok {
				contentLength = cl
			}
		}
	}

	if pos >= n {
		return pos, framing, contentLength, Incomplete
	}
	if pos+1 < n && buf[pos] == cCR && buf[pos+1] == cLF {
		return pos + 2, framing, contentLength, resAdvance
	}

	for {
		nameStart := pos
		colon, ok := findColon(buf, nameStart)
		if !ok {
			return pos, framing, contentLength, Incomplete
		}
		nameEnd := colon
		valueStart := colon + 1
		valueStart = trimLeftWS(buf, valueStart, n)

		crIdx, ok := findCRLF(buf, valueStart)
		if !ok {
			return pos, framing, contentLength, Incomplete
		}
		valueEnd := trimRightWS(buf, valueStart, crIdx)

		var h Header
		h.Name.Set(nameStart, nameEnd)
		h.Value.Set(valueStart, valueEnd)

		if !hl.append(h) {
			return pos, framing, contentLength, ErrTooManyHeaders
		}

		if framing == framingNone {
			name := h.Name.Get(buf)
			value := h.Value.Get(buf)
			if ciEqualLower(name, "transfer-encoding") && ciEqualLower(value, "chunked") {
				framing = framingChunked
			} else if ciEqualLower(name, "content-length") && len(value) > 0 {
				framing = framingContentLength
				if cl, ok := parseDecimalUint(value); ok {
					contentLength = cl
				}
			}
		}

		pos = crIdx + 2
		if pos+1 < n && buf[pos] == cCR && buf[pos+1] == cLF {
			return pos + 2, framing, contentLength, resAdvance
		}
		if pos >= n {
			return pos, framing, contentLength, Incomplete
		}
	}
}

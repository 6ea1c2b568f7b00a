// Package httpwire implements a zero-copy, incremental HTTP/1.x request and
// response parser. It advances a state machine across partial reads of a
// byte buffer and exposes every parsed field as a (offset, length) view
// into that same buffer, without allocating.
package httpwire

// OffsT is the type used for offsets and lengths inside a Field.
type OffsT uint32

// Field is a parsed field: an offset and a length inside some buffer.
// It holds no reference to the buffer itself — Get() must be called with
// the same buffer (or a buffer sharing the same addressing) the field was
// parsed from.
type Field struct {
	Offs OffsT
	Len  OffsT
}

// Set sets f to point to [start:end) inside the buffer it will later be
// resolved against. end points one byte past the field.
func (f *Field) Set(start, end int) {
	f.Offs = OffsT(start)
	f.Len = OffsT(end - start)
	if end < start {
		panic("httpwire: invalid field range")
	}
}

// Reset clears f to the empty field.
func (f *Field) Reset() {
	f.Offs = 0
	f.Len = 0
}

// Extend grows f so that it ends at newEnd.
func (f *Field) Extend(newEnd int) {
	if newEnd < int(f.Offs) {
		panic("httpwire: invalid field end offset")
	}
	f.Len = OffsT(newEnd) - f.Offs
}

// Empty returns true if f has zero length.
func (f Field) Empty() bool {
	return f.Len == 0
}

// EndOffs returns the offset of the first byte after f.
func (f Field) EndOffs() int {
	return int(f.Offs) + int(f.Len)
}

// Get returns the byte slice f refers to inside buf.
func (f Field) Get(buf []byte) []byte {
	return buf[f.Offs : f.Offs+f.Len]
}

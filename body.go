package httpwire

// chunkState tracks the in-progress in-place dechunking of a
// Transfer-Encoding: chunked body across possibly many Parse calls. It
// remembers its own scan cursor (srcPos) rather than trusting the caller
// to re-derive it, since an Incomplete result leaves the caller's own
// cursor pinned at the start of the body across repeated calls.
type chunkState struct {
	bodyStart int
	srcPos    int
	decoded   int
	started   bool
}

func (c *chunkState) Reset() {
	*c = chunkState{}
}

// decodeContentLengthBody reports the body complete as soon as at least
// contentLength bytes are available past pos, recording exactly that many.
func decodeContentLengthBody(buf []byte, pos int, contentLength uint64) (Field, int, Result) {
	n := len(buf)
	end := pos + int(contentLength)
	if end > n {
		return Field{}, pos, Incomplete
	}
	var body Field
	body.Set(pos, end)
	return body, end, resAdvance
}

// decodeChunkedBody incrementally dechunks a Transfer-Encoding: chunked
// body in place: each chunk's data is moved down over the chunk-size line
// and its trailing CRLF that preceded it, so the decoded body ends up
// contiguous starting at the position the body began (overwriting bytes
// that are no longer needed). It returns a Field over the decoded body
// once the terminal zero-length chunk and its CRLF have been consumed.
func decodeChunkedBody(buf []byte, pos int, cs *chunkState) (Field, int, Result) {
	n := len(buf)
	if !cs.started {
		cs.bodyStart = pos
		cs.srcPos = pos
		cs.decoded = 0
		cs.started = true
	}
	pos = cs.srcPos

	for {
		crIdx, ok := findCRLF(buf, pos)
		if !ok {
			return Field{}, pos, Incomplete
		}
		chunkLen, ok := parseHexUint(buf[pos:crIdx])
		if !ok {
			return Field{}, pos, ErrChunkMalformed
		}

		if chunkLen != 0 {
			chunkDataStart := crIdx + 2
			chunkDataEnd := chunkDataStart + int(chunkLen)
			if chunkDataEnd+2 > n {
				return Field{}, pos, Incomplete
			}
			dst := cs.bodyStart + cs.decoded
			copy(buf[dst:dst+int(chunkLen)], buf[chunkDataStart:chunkDataEnd])
			cs.decoded += int(chunkLen)

			if buf[chunkDataEnd] != cCR || buf[chunkDataEnd+1] != cLF {
				return Field{}, pos, ErrChunkMalformed
			}
			pos = chunkDataEnd + 2
			cs.srcPos = pos
			continue
		}

		// Terminal zero-length chunk: consume its own CRLF plus the
		// CRLF that ends the (trailer-less) chunked body.
		if crIdx+4 > n {
			return Field{}, pos, Incomplete
		}
		if buf[crIdx+2] != cCR || buf[crIdx+3] != cLF {
			return Field{}, pos, ErrChunkMalformed
		}
		var body Field
		body.Set(cs.bodyStart, cs.bodyStart+cs.decoded)
		return body, crIdx + 4, resAdvance
	}
}

package httpwire

// Method is the HTTP/1.x request method. Only the methods the parser can
// recognise without a general token scan are enumerated; anything else is
// reported as ErrMethodUnknown, there is no MOther catch-all.
type Method uint8

const (
	MUndef Method = iota
	MGet
	MHead
	MPost
	MPut
	MDelete
	MConnect
	MOptions
	MTrace
	MPatch
)

// Method2Name translates a numeric Method into its ASCII name.
var Method2Name = [...][]byte{
	MUndef:   []byte(""),
	MGet:     []byte("GET"),
	MHead:    []byte("HEAD"),
	MPost:    []byte("POST"),
	MPut:     []byte("PUT"),
	MDelete:  []byte("DELETE"),
	MConnect: []byte("CONNECT"),
	MOptions: []byte("OPTIONS"),
	MTrace:   []byte("TRACE"),
	MPatch:   []byte("PATCH"),
}

// Name returns the ASCII method name.
func (m Method) Name() []byte {
	if int(m) >= len(Method2Name) {
		return Method2Name[MUndef]
	}
	return Method2Name[m]
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m.Name())
}

// recognizeMethod matches the request-line method starting at buf[pos] and
// consumes the single trailing SP. It returns the recognised method, the
// position just past that SP, and a sequencing Result: resAdvance on
// success, Incomplete if buf holds fewer bytes than the candidate method
// plus its SP, or ErrMethodUnknown if the leading byte (or its
// disambiguating follow-up for "P") doesn't match any known method or the
// following bytes diverge from that method's literal.
//
// This mirrors the literal first-byte switch of the grammar it was ported
// from rather than a hash-bucket lookup: every method keyword is matched
// byte by byte against a fixed literal, failing fast on the first mismatch.
func recognizeMethod(buf []byte, pos int) (Method, int, Result) {
	n := len(buf)
	if pos >= n {
		return MUndef, pos, Incomplete
	}
	switch buf[pos] {
	case 'G':
		return matchMethodLiteral(buf, pos, "GET ", MGet)
	case 'H':
		return matchMethodLiteral(buf, pos, "HEAD ", MHead)
	case 'D':
		return matchMethodLiteral(buf, pos, "DELETE ", MDelete)
	case 'C':
		return matchMethodLiteral(buf, pos, "CONNECT ", MConnect)
	case 'O':
		return matchMethodLiteral(buf, pos, "OPTIONS ", MOptions)
	case 'T':
		return matchMethodLiteral(buf, pos, "TRACE ", MTrace)
	case 'P':
		if pos+1 >= n {
			return MUndef, pos, Incomplete
		}
		switch buf[pos+1] {
		case 'O':
			return matchMethodLiteral(buf, pos, "POST ", MPost)
		case 'U':
			return matchMethodLiteral(buf, pos, "PUT ", MPut)
		case 'A':
			return matchMethodLiteral(buf, pos, "PATCH ", MPatch)
		default:
			return MUndef, pos, ErrMethodUnknown
		}
	default:
		return MUndef, pos, ErrMethodUnknown
	}
}

// matchMethodLiteral compares buf[pos:] against literal (which includes the
// trailing SP) and, on a full match, returns the position right after it.
func matchMethodLiteral(buf []byte, pos int, literal string, m Method) (Method, int, Result) {
	if pos+len(literal) > len(buf) {
		return MUndef, pos, Incomplete
	}
	for i := 0; i < len(literal); i++ {
		if buf[pos+i] != literal[i] {
			return MUndef, pos, ErrMethodUnknown
		}
	}
	return m, pos + len(literal), resAdvance
}

package httpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognizeMethodKnown(t *testing.T) {
	tests := []struct {
		lit string
		m   Method
	}{
		{"GET ", MGet},
		{"HEAD ", MHead},
		{"POST ", MPost},
		{"PUT ", MPut},
		{"PATCH ", MPatch},
		{"DELETE ", MDelete},
		{"CONNECT ", MConnect},
		{"OPTIONS ", MOptions},
		{"TRACE ", MTrace},
	}
	for _, tc := range tests {
		buf := []byte(tc.lit + "/ HTTP/1.1\r\n")
		m, pos, res := recognizeMethod(buf, 0)
		assert.Equal(t, resAdvance, res, tc.lit)
		assert.Equal(t, tc.m, m, tc.lit)
		assert.Equal(t, len(tc.lit), pos, tc.lit)
		assert.Equal(t, tc.lit[:len(tc.lit)-1], string(m.Name()), tc.lit)
	}
}

func TestRecognizeMethodUnknown(t *testing.T) {
	_, _, res := recognizeMethod([]byte("FROB / HTTP/1.1\r\n"), 0)
	assert.Equal(t, ErrMethodUnknown, res)

	_, _, res = recognizeMethod([]byte("PXX / HTTP/1.1\r\n"), 0)
	assert.Equal(t, ErrMethodUnknown, res)
}

func TestRecognizeMethodIncomplete(t *testing.T) {
	_, _, res := recognizeMethod([]byte("GE"), 0)
	assert.Equal(t, Incomplete, res)

	_, _, res = recognizeMethod([]byte(""), 0)
	assert.Equal(t, Incomplete, res)

	_, _, res = recognizeMethod([]byte("P"), 0)
	assert.Equal(t, Incomplete, res)

	_, _, res = recognizeMethod([]byte("PO"), 0)
	assert.Equal(t, Incomplete, res)
}

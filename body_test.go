package httpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContentLengthBody(t *testing.T) {
	buf := []byte("hello world, more after")
	body, pos, res := decodeContentLengthBody(buf, 0, 11)
	require.Equal(t, resAdvance, res)
	assert.Equal(t, "hello world", string(body.Get(buf)))
	assert.Equal(t, 11, pos)
}

func TestDecodeContentLengthBodyIncomplete(t *testing.T) {
	buf := []byte("short")
	_, _, res := decodeContentLengthBody(buf, 0, 100)
	assert.Equal(t, Incomplete, res)
}

func TestDecodeChunkedBody(t *testing.T) {
	buf := []byte("5\r\nhello\r\n6\r\n world\r\n0\r\n\r\n")
	var cs chunkState
	body, pos, res := decodeChunkedBody(buf, 0, &cs)
	require.Equal(t, resAdvance, res)
	assert.Equal(t, "hello world", string(body.Get(buf)))
	assert.Equal(t, len(buf), pos)
}

func TestDecodeChunkedBodyExtensionTruncated(t *testing.T) {
	buf := []byte("5;foo=bar\r\nhello\r\n0\r\n\r\n")
	var cs chunkState
	body, _, res := decodeChunkedBody(buf, 0, &cs)
	require.Equal(t, resAdvance, res)
	assert.Equal(t, "hello", string(body.Get(buf)))
}

func TestDecodeChunkedBodyIncomplete(t *testing.T) {
	buf := []byte("5\r\nhel")
	var cs chunkState
	_, _, res := decodeChunkedBody(buf, 0, &cs)
	assert.Equal(t, Incomplete, res)
}

func TestDecodeChunkedBodyMalformed(t *testing.T) {
	buf := []byte("5\r\nhelloXX0\r\n\r\n")
	var cs chunkState
	_, _, res := decodeChunkedBody(buf, 0, &cs)
	assert.Equal(t, ErrChunkMalformed, res)
}

func TestDecodeChunkedBodySplitAcrossCalls(t *testing.T) {
	full := []byte("5\r\nhello\r\n6\r\n world\r\n0\r\n\r\n")
	var cs chunkState
	var res Result
	for end := 1; end <= len(full); end++ {
		res = func() Result {
			buf := full[:end]
			_, _, r := decodeChunkedBody(buf, 0, &cs)
			return r
		}()
		if res == resAdvance {
			break
		}
		require.Equal(t, Incomplete, res, "end=%d", end)
	}
	assert.Equal(t, resAdvance, res)
}

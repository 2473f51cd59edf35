package varint

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 255, 300, 65535, 1 << 20, 1<<32 - 1}
	for _, v := range values {
		var buf bytes.Buffer
		Write(&buf, v)
		got, err := Read(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got, "value %d", v)
	}
}

func TestSingleByteEncoding(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, 5)
	assert.Equal(t, []byte{5}, buf.Bytes())
}

func TestTruncatedReadIsUnexpectedEOF(t *testing.T) {
	// 0x80 signals continuation but the buffer ends there.
	_, err := Read(bytes.NewReader([]byte{0x80}))
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestTooManyContinuationBytes(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}))
	require.Error(t, err)
}

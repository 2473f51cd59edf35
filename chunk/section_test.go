package chunk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionRoundTrip(t *testing.T) {
	s := NewSection()
	s.BlockCount = 1234
	for i := 0; i < 4096; i++ {
		s.BlockStates.SetAtIndex(i, uint32(i%50))
	}
	for i := 0; i < 64; i++ {
		s.Biomes.SetAtIndex(i, uint32(i%5))
	}

	var buf bytes.Buffer
	s.WriteTo(&buf)

	decoded, err := ReadSection(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, s.BlockCount, decoded.BlockCount)
	for i := 0; i < 4096; i++ {
		assert.Equal(t, s.BlockStates.GetAtIndex(i), decoded.BlockStates.GetAtIndex(i))
	}
	for i := 0; i < 64; i++ {
		assert.Equal(t, s.Biomes.GetAtIndex(i), decoded.Biomes.GetAtIndex(i))
	}
}

func TestSectionFingerprintStableAndSensitive(t *testing.T) {
	s1 := NewSection()
	s2 := NewSection()
	assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())

	s2.BlockStates.SetAtIndex(0, 1)
	assert.NotEqual(t, s1.Fingerprint(), s2.Fingerprint())
}

func TestSectionNegativeBlockCountRoundTrips(t *testing.T) {
	s := NewSection()
	s.BlockCount = -1

	var buf bytes.Buffer
	s.WriteTo(&buf)

	decoded, err := ReadSection(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, int16(-1), decoded.BlockCount)
}

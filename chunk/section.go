package chunk

import (
	"bytes"
	"io"
)

// Section bundles one section's worth of block-state and biome data:
// the pair of PalettedContainers the wire format lays out back-to-back
// for every chunk section, matching ChunkSection in the chunk parser.
// BlockCount carries through the protocol's non-air cell count, which
// the paletted container itself has no use for but which a caller
// deciding whether a section is worth rendering needs.
type Section struct {
	BlockCount  int16
	BlockStates *PalettedContainer
	Biomes      *PalettedContainer
}

// NewSection returns an empty section: zero block count, and both
// containers at their empty SingleValue(0) state.
func NewSection() *Section {
	return &Section{
		BlockCount:  0,
		BlockStates: NewPalettedContainer(BlockStates),
		Biomes:      NewPalettedContainer(Biomes),
	}
}

// ReadSection decodes a Section from r: a big-endian int16 block
// count, then the block-states container, then the biomes container.
func ReadSection(r *bytes.Reader) (*Section, error) {
	var countBytes [2]byte
	if _, err := io.ReadFull(r, countBytes[:]); err != nil {
		return nil, decodeErr(TruncatedBuffer, err)
	}
	blockCount := int16(uint16(countBytes[0])<<8 | uint16(countBytes[1]))

	blockStates, err := ReadPalettedContainer(r, BlockStates)
	if err != nil {
		return nil, err
	}
	biomes, err := ReadPalettedContainer(r, Biomes)
	if err != nil {
		return nil, err
	}

	return &Section{BlockCount: blockCount, BlockStates: blockStates, Biomes: biomes}, nil
}

// WriteTo encodes the section in the same order ReadSection expects it.
func (s *Section) WriteTo(buf *bytes.Buffer) {
	buf.WriteByte(byte(uint16(s.BlockCount) >> 8))
	buf.WriteByte(byte(uint16(s.BlockCount)))
	s.BlockStates.WriteTo(buf)
	s.Biomes.WriteTo(buf)
}

package chunk

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/go-mclib/paletted/internal/varint"
)

func writeVarU32(buf *bytes.Buffer, v uint32) { varint.Write(buf, v) }

func readVarU32(r *bytes.Reader) (uint32, error) {
	start := r.Len()
	v, err := varint.Read(r)
	if err == io.ErrUnexpectedEOF && start == 0 {
		return 0, decodeErr(TruncatedBuffer, err)
	}
	if err != nil {
		return 0, decodeErr(MalformedVarInt, err)
	}
	return v, nil
}

// ReadPalettedContainer decodes a PalettedContainer from r. kind is
// supplied by the caller's context (chunk sections use BlockStates,
// biome sections use Biomes) since it is never itself on the wire.
func ReadPalettedContainer(r *bytes.Reader, kind ContainerKind) (*PalettedContainer, error) {
	bitsPerEntryByte, err := r.ReadByte()
	if err != nil {
		return nil, decodeErr(TruncatedBuffer, err)
	}
	bitsPerEntry := int(bitsPerEntryByte)

	paletteKind := paletteKindFor(bitsPerEntry, kind)
	palette, err := readPalette(r, paletteKind)
	if err != nil {
		return nil, err
	}

	wordCountWire, err := readVarU32(r)
	if err != nil {
		return nil, err
	}
	words := make([]uint64, wordCountWire)
	for i := range words {
		var wordBytes [8]byte
		if _, err := io.ReadFull(r, wordBytes[:]); err != nil {
			return nil, decodeErr(TruncatedBuffer, err)
		}
		words[i] = binary.BigEndian.Uint64(wordBytes[:])
	}

	if bitsPerEntry == 0 && len(words) != 0 {
		return nil, decodeErr(SizeMismatch, nil)
	}

	storage, err := NewBitStorageFromData(bitsPerEntry, kind.Size(), words)
	if err != nil {
		return nil, err
	}

	return &PalettedContainer{
		bitsPerEntry: bitsPerEntry,
		palette:      palette,
		storage:      storage,
		kind:         kind,
	}, nil
}

// WriteTo encodes the container's wire representation into buf:
// bits_per_entry, the palette's self-encoding, then the storage's word
// vector with its VarInt length prefix. Multi-byte scalars (the length
// prefix aside, which is a VarInt) are big-endian.
func (c *PalettedContainer) WriteTo(buf *bytes.Buffer) {
	buf.WriteByte(byte(c.bitsPerEntry))
	c.palette.write(buf)

	words := c.storage.Data()
	writeVarU32(buf, uint32(len(words)))
	var wordBytes [8]byte
	for _, w := range words {
		binary.BigEndian.PutUint64(wordBytes[:], w)
		buf.Write(wordBytes[:])
	}
}

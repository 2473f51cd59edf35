package chunk

import (
	"bytes"

	"github.com/brentp/intintmap"
)

// hashmapIndexFillFactor and hashmapIndexInitialSize tune the
// intintmap.Map backing a Hashmap palette. BlockStates Hashmap
// palettes span bits_per_entry 5..8, i.e. at most 256 distinct values,
// so a small initial size is enough; it grows on demand like any map.
const (
	hashmapIndexInitialSize = 32
	hashmapIndexFillFactor  = 0.75
)

// Palette translates compact palette ids (as stored in a BitStorage)
// to full-domain 32-bit values. It is a tagged variant over four
// shapes rather than an interface: the design notes this core follows
// call dynamic dispatch unnecessary overhead for a value this hot, so
// Kind plus a handful of fields stands in for a sum type.
type Palette struct {
	kind   PaletteKind
	single uint32
	values []uint32

	// index accelerates IndexOf for Hashmap palettes only; Linear
	// palettes are small enough (<=16 entries for BlockStates) that a
	// scan is cheaper than maintaining one.
	index *intintmap.Map
}

// NewSingleValuePalette returns a palette where every id resolves to v.
func NewSingleValuePalette(v uint32) *Palette {
	return &Palette{kind: KindSingleValue, single: v}
}

// NewLinearPalette returns an empty Linear palette.
func NewLinearPalette() *Palette {
	return &Palette{kind: KindLinear}
}

// NewHashmapPalette returns an empty Hashmap palette backed by a real
// hash index, making IndexOf O(1) in the regime where Hashmap is
// chosen (bits_per_entry 5..8 for BlockStates).
func NewHashmapPalette() *Palette {
	return &Palette{kind: KindHashmap, index: intintmap.New(hashmapIndexInitialSize, hashmapIndexFillFactor)}
}

// NewGlobalPalette returns the identity palette: the id is the value.
func NewGlobalPalette() *Palette {
	return &Palette{kind: KindGlobal}
}

// Kind returns the palette's current tagged variant.
func (p *Palette) Kind() PaletteKind { return p.kind }

// Len is the number of distinct values held (0 for SingleValue/Global).
func (p *Palette) Len() int { return len(p.values) }

// ValueFor resolves a palette id to its domain value.
func (p *Palette) ValueFor(id uint32) uint32 {
	switch p.kind {
	case KindSingleValue:
		return p.single
	case KindLinear, KindHashmap:
		if int(id) >= len(p.values) {
			outOfRange("Palette.ValueFor", int(id), len(p.values))
		}
		return p.values[id]
	case KindGlobal:
		return id
	default:
		panic("chunk: invalid palette kind")
	}
}

// IndexOf returns the palette id for v, if present.
func (p *Palette) IndexOf(v uint32) (int, bool) {
	switch p.kind {
	case KindSingleValue:
		if v == p.single {
			return 0, true
		}
		return 0, false
	case KindLinear:
		for i, have := range p.values {
			if have == v {
				return i, true
			}
		}
		return 0, false
	case KindHashmap:
		if id, ok := p.index.Get(int64(v)); ok {
			return int(id), true
		}
		return 0, false
	case KindGlobal:
		return int(v), true
	default:
		panic("chunk: invalid palette kind")
	}
}

// Append adds v as a new entry and returns its id. Only valid for
// Linear and Hashmap palettes.
func (p *Palette) Append(v uint32) int {
	id := len(p.values)
	p.values = append(p.values, v)
	if p.kind == KindHashmap {
		p.index.Put(int64(v), int64(id))
	}
	return id
}

// write encodes the palette's wire representation: SingleValue writes
// one VarInt value; Linear and Hashmap each write a VarInt length
// prefix followed by that many VarInt values; Global writes nothing.
func (p *Palette) write(buf *bytes.Buffer) {
	switch p.kind {
	case KindSingleValue:
		writeVarU32(buf, p.single)
	case KindLinear, KindHashmap:
		writeVarU32(buf, uint32(len(p.values)))
		for _, v := range p.values {
			writeVarU32(buf, v)
		}
	case KindGlobal:
		// no wire representation
	}
}

// readPalette is the inverse of write, dispatched by kind (chosen by
// the container from bits_per_entry).
func readPalette(r *bytes.Reader, kind PaletteKind) (*Palette, error) {
	switch kind {
	case KindSingleValue:
		v, err := readVarU32(r)
		if err != nil {
			return nil, err
		}
		return NewSingleValuePalette(v), nil
	case KindLinear, KindHashmap:
		n, err := readVarU32(r)
		if err != nil {
			return nil, err
		}
		var p *Palette
		if kind == KindLinear {
			p = NewLinearPalette()
		} else {
			p = NewHashmapPalette()
		}
		p.values = make([]uint32, 0, n)
		for i := uint32(0); i < n; i++ {
			v, err := readVarU32(r)
			if err != nil {
				return nil, err
			}
			p.Append(v)
		}
		return p, nil
	case KindGlobal:
		return NewGlobalPalette(), nil
	default:
		panic("chunk: invalid palette kind")
	}
}

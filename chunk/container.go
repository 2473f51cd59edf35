package chunk

// PalettedContainer composes a BitStorage, a Palette, and a
// ContainerKind. It presents a 3-D coordinate view over a section and
// owns growing the palette and re-packing the storage whenever the set
// of distinct values outgrows the current bit width.
//
// A PalettedContainer is not safe for concurrent mutation. Concurrent
// readers are fine on a container nobody is writing to; a writer needs
// exclusive access. The embedding system is responsible for that
// synchronization.
type PalettedContainer struct {
	bitsPerEntry int
	palette      *Palette
	storage      *BitStorage
	kind         ContainerKind
}

// NewPalettedContainer returns an empty container: SingleValue(0),
// bits_per_entry 0, zero-width storage.
func NewPalettedContainer(kind ContainerKind) *PalettedContainer {
	return &PalettedContainer{
		bitsPerEntry: 0,
		palette:      NewSingleValuePalette(0),
		storage:      NewBitStorage(0, kind.Size()),
		kind:         kind,
	}
}

// Kind returns the container's ContainerKind.
func (c *PalettedContainer) Kind() ContainerKind { return c.kind }

// BitsPerEntry returns the container's current bit width.
func (c *PalettedContainer) BitsPerEntry() int { return c.bitsPerEntry }

// Palette returns the container's current palette.
func (c *PalettedContainer) Palette() *Palette { return c.palette }

// indexFromCoords linearizes (x, y, z) using the mandatory YZX
// ordering: ((y << b) | z) << b | x, where b = kind.SizeBits().
func (c *PalettedContainer) indexFromCoords(x, y, z int) int {
	b := c.kind.SizeBits()
	return (((y << b) | z) << b) | x
}

// coordsFromIndex inverts indexFromCoords.
func (c *PalettedContainer) coordsFromIndex(i int) (x, y, z int) {
	b := c.kind.SizeBits()
	mask := (1 << b) - 1
	x = i & mask
	z = (i >> b) & mask
	y = (i >> (2 * b)) & mask
	return
}

// IndexFromCoords exposes the coordinate-to-index mapping to
// collaborators that address cells in bulk.
func (c *PalettedContainer) IndexFromCoords(x, y, z int) int { return c.indexFromCoords(x, y, z) }

// CoordsFromIndex exposes the index-to-coordinate mapping.
func (c *PalettedContainer) CoordsFromIndex(i int) (x, y, z int) { return c.coordsFromIndex(i) }

// Get resolves the domain value stored at (x, y, z).
func (c *PalettedContainer) Get(x, y, z int) uint32 {
	return c.GetAtIndex(c.indexFromCoords(x, y, z))
}

// GetAtIndex resolves the domain value stored at linear index i.
func (c *PalettedContainer) GetAtIndex(i int) uint32 {
	id := c.storage.Get(i)
	return c.palette.ValueFor(uint32(id))
}

// Set writes v at (x, y, z), growing the palette and re-packing the
// storage if v is not yet representable.
func (c *PalettedContainer) Set(x, y, z int, v uint32) {
	c.SetAtIndex(c.indexFromCoords(x, y, z), v)
}

// SetAtIndex writes v at linear index i.
func (c *PalettedContainer) SetAtIndex(i int, v uint32) {
	id := c.idFor(v)
	c.storage.Set(i, uint64(id))
}

// idFor returns the palette id for v, growing the container in place
// (by swapping in a freshly built replacement) if v is not yet
// representable at the current bit width.
func (c *PalettedContainer) idFor(v uint32) int {
	switch c.palette.Kind() {
	case KindSingleValue:
		if v == c.palette.single {
			return 0
		}
		return c.onResize(1, v)
	case KindLinear, KindHashmap:
		if id, ok := c.palette.IndexOf(v); ok {
			return id
		}
		if c.palette.Len() < (1 << uint(c.bitsPerEntry)) {
			return c.palette.Append(v)
		}
		return c.onResize(c.bitsPerEntry+1, v)
	case KindGlobal:
		if c.bitsPerEntry < 32 && uint64(v) >= uint64(1)<<uint(c.bitsPerEntry) {
			return c.onResize(c.bitsPerEntry+1, v)
		}
		return int(v)
	default:
		panic("chunk: invalid palette kind")
	}
}

// onResize grows the container to newBits, re-encoding every existing
// cell through the new palette, then returns idFor(v) on the grown
// container. It builds the replacement as a local value and swaps it
// into *c only once fully populated: mutating c in place while also
// recursively calling back into its own idFor would alias the very
// storage being resized. The recursion onResize may trigger by calling
// the fresh container's idFor is bounded by 32 - bitsPerEntry, since
// each level strictly increases the bit width.
func (c *PalettedContainer) onResize(newBits int, v uint32) int {
	next := &PalettedContainer{
		bitsPerEntry: newBits,
		palette:      newPaletteForWidth(newBits, c.kind),
		storage:      NewBitStorage(newBits, c.kind.Size()),
		kind:         c.kind,
	}
	for i := 0; i < c.kind.Size(); i++ {
		old := c.GetAtIndex(i)
		next.storage.Set(i, uint64(next.idFor(old)))
	}
	*c = *next
	return c.idFor(v)
}

// newPaletteForWidth builds an empty palette of the kind selected by
// the transition table for newBits, never width 0 (onResize never
// grows back to SingleValue).
func newPaletteForWidth(newBits int, kind ContainerKind) *Palette {
	switch paletteKindFor(newBits, kind) {
	case KindLinear:
		return NewLinearPalette()
	case KindHashmap:
		return NewHashmapPalette()
	case KindGlobal:
		return NewGlobalPalette()
	default:
		panic("chunk: resize produced SingleValue palette")
	}
}

package chunk

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a content hash of the section's encoded wire
// bytes. It is a debugging aid, not a cache: nothing is stored or
// looked up by fingerprint. Sections that are byte-identical on the
// wire always have equal Fingerprint values; this is useful for things like
// logging whether resending a chunk actually changed anything.
func (s *Section) Fingerprint() uint64 {
	var buf bytes.Buffer
	s.WriteTo(&buf)
	return xxhash.Sum64(buf.Bytes())
}

// Fingerprint returns a content hash of just this container's encoded
// wire bytes.
func (c *PalettedContainer) Fingerprint() uint64 {
	var buf bytes.Buffer
	c.WriteTo(&buf)
	return xxhash.Sum64(buf.Bytes())
}

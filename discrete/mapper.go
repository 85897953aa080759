package discrete

import (
	"fmt"
	"math"
)

// EncodingMap associates 1-based design-vector slots with the value set
// used to decode them. Slots absent from the map pass through unchanged.
// An empty (or nil) map makes the mapper an identity.
type EncodingMap map[int]ValueSet

// Mapper rewrites the integer-coded slots of a design vector with their
// decoded catalog values. It is immutable after construction and safe for
// concurrent use.
type Mapper struct {
	slots    int
	encoding EncodingMap
}

// NewMapper validates the encoding against a vector of the given length.
// Every referenced slot must lie in [1, slots] and every set must be
// non-empty.
func NewMapper(slots int, encoding EncodingMap) (*Mapper, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrDimensionMismatch, slots)
	}
	for slot, set := range encoding {
		if slot < 1 || slot > slots {
			return nil, fmt.Errorf("%w: encoded slot %d outside [1,%d]", ErrDimensionMismatch, slot, slots)
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("encoded slot %d: empty value set", slot)
		}
	}

	// Copy so later mutation of the caller's map cannot change decoding.
	enc := make(EncodingMap, len(encoding))
	for slot, set := range encoding {
		enc[slot] = set
	}

	return &Mapper{slots: slots, encoding: enc}, nil
}

// Slots returns the expected design vector length.
func (m *Mapper) Slots() int {
	return m.slots
}

// CodedSlots reports whether any slot is integer-coded.
func (m *Mapper) CodedSlots() int {
	return len(m.encoding)
}

// Decode returns a copy of x with every coded slot replaced by its catalog
// value. Codes arrive as float64 genome entries and are rounded to the
// nearest integer before lookup; a rounded code outside the catalog is an
// ErrIndexOutOfRange, never a clamp.
func (m *Mapper) Decode(x []float64) ([]float64, error) {
	if len(x) != m.slots {
		return nil, fmt.Errorf("%w: got %d slots, want %d", ErrDimensionMismatch, len(x), m.slots)
	}

	out := make([]float64, len(x))
	copy(out, x)

	for slot, set := range m.encoding {
		code := int(math.Round(x[slot-1]))
		v, err := set.At(code)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", slot, err)
		}
		out[slot-1] = v
	}

	return out, nil
}

package dynvec

import (
	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/dynvec/internal/buffer"
)

// MarshalJSON encodes the live range as a JSON array. Capacity is not
// persisted.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.size == 0 {
		return []byte("[]"), nil
	}
	return gojson.Marshal(v.View())
}

// UnmarshalJSON replaces the contents with the decoded array. Like
// Clone, the result's capacity equals its size.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := gojson.Unmarshal(data, &elems); err != nil {
		return err
	}
	// The decoder built the slice for us; adopt it instead of copying.
	v.Swap(&Vector[T]{
		items:    buffer.Adopt(elems),
		size:     len(elems),
		capacity: len(elems),
	})
	return nil
}

package dynvec

import "fmt"

// ErrIndexOutOfRange indicates a checked access outside the live
// element range [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Size)
}

package ustring

import "fmt"

// DecodeError is returned when the grapheme segmenter cannot interpret the
// buffer content as text. The layout stays unevaluated; a later query will
// fail again until the content is corrected.
type DecodeError struct {
	Err error // the segmenter's rejection
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("ustring: buffer cannot be decoded: %v", e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// BoundsError is returned for a character index outside of [0:Size], or for
// a relative index with magnitude greater than Size.
type BoundsError struct {
	Index int // the offending index, as given by the caller
	Size  int // character count of the value at query time
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("ustring: character index %d out of bounds [0:%d]", e.Index, e.Size)
}

// OverflowError is returned during layout construction when a computed
// quantity does not fit its encoding: the byte length or character count
// exceeds MaxSize, or a character width exceeds the 8-bit width field.
type OverflowError struct {
	Quantity string // which quantity overflowed
	Value    int64
	Limit    int64
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("ustring: %s %d exceeds maximum of %d", e.Quantity, e.Value, e.Limit)
}

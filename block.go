package ustring

// A block records a maximal run of consecutive characters whose byte width
// deviates from the layout's average width. The original bit-packed layout
// limited runs to 16 characters and widths to 16 bytes; this encoding keeps
// the run cap but stores the width in a full byte, so clusters of up to 255
// bytes are representable. Range violations are rejected at construction
// instead of silently wrapping.
type block struct {
	first  uint32 // index of the first character of the run
	prefix int32  // cumulative byte correction of all blocks before this one
	count  uint8  // characters in the run, 1…maxBlockLen
	width  uint8  // byte width of each character, 1…maxCharWidth
}

const (
	maxBlockLen  = 16  // caps the run length, as in the packed encoding
	maxCharWidth = 255 // widest representable character, in bytes
)

// newBlock opens a run of one character. Width outside of [1,maxCharWidth]
// is an OverflowError.
func newBlock(first int, width int, prefix int) (*block, error) {
	if width < 1 || width > maxCharWidth {
		return nil, OverflowError{Quantity: "character width", Value: int64(width), Limit: maxCharWidth}
	}
	return &block{
		first:  uint32(first),
		prefix: int32(prefix),
		count:  1,
		width:  uint8(width),
	}, nil
}

func (b *block) full() bool {
	return b.count == maxBlockLen
}

func (b *block) extend() {
	if b.full() {
		panic("ustring: extending a full block")
	}
	b.count++
}

// contains reports whether character index i falls inside the run.
func (b *block) contains(i int) bool {
	return i >= int(b.first) && i < int(b.first)+int(b.count)
}

// correction is the total byte correction contributed by the run itself,
// relative to the given average width.
func (b *block) correction(average int) int {
	return int(b.count) * (int(b.width) - average)
}

package ustring

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/gavrilikhin-d/ustring/grapheme"
)

// MaxSize is the maximum number of bytes (and therefore characters) a
// String may hold.
const MaxSize = math.MaxInt32

// notEvaluated marks a layout that has to be (re-)built before use. An
// evaluated layout always has an average width of at least 1.
const notEvaluated = 0

// A layout is the memoized model mapping character indices to byte offsets
// for one specific buffer content. It consists of the rounded mean byte
// width over all characters and an ordered set of correction blocks for the
// runs that deviate from it.
//
// The invariant: each character consumes exactly average bytes, unless it
// falls inside a block, in which case it consumes that block's width. The
// per-character widths sum up to the byte length of the buffer.
type layout struct {
	average int                // mean character width in bytes; notEvaluated when stale
	count   int                // number of characters in the buffer
	blocks  *redblacktree.Tree // first character index → *block; nil when no block exists
}

func (l *layout) evaluated() bool {
	return l.average != notEvaluated
}

func (l *layout) isASCII() bool {
	return l.average == 1 && l.blocks == nil
}

// byteRange resolves character index i to the byte offset and width of the
// i-th grapheme cluster. The offset estimate i×average is corrected by a
// predecessor search over the block set, O(log blockCount).
func (l *layout) byteRange(i int) (offset int, width int, err error) {
	if i < 0 || i >= l.count {
		return 0, 0, BoundsError{Index: i, Size: l.count}
	}
	offset = i * l.average
	width = l.average
	if l.blocks == nil {
		return offset, width, nil
	}
	node, ok := l.blocks.Floor(i)
	if !ok {
		// No block starts at or before i; the estimate is exact.
		return offset, width, nil
	}
	b := node.Value.(*block)
	offset += int(b.prefix)
	if b.contains(i) {
		width = int(b.width)
		offset += (i - int(b.first)) * (int(b.width) - l.average)
	} else {
		// i lies in the gap after the run, where widths returned to
		// average; the run's own correction still shifts the offset.
		offset += b.correction(l.average)
	}
	return offset, width, nil
}

// layoutOf builds an evaluated layout for the given buffer. This is the
// expensive part: two forward segmentation passes, one counting characters
// and one run-length encoding the deviating widths into blocks.
func layoutOf(buf []byte) (layout, error) {
	if len(buf) > MaxSize {
		return layout{}, OverflowError{Quantity: "byte length", Value: int64(len(buf)), Limit: MaxSize}
	}
	if len(buf) == 0 {
		return layout{average: 1}, nil
	}
	if len(buf) == 1 {
		// A single byte is a single character; no segmentation needed.
		return layout{average: 1, count: 1}, nil
	}

	sg := grapheme.BorrowSegmenter()
	defer sg.Release()

	if err := sg.Init(buf); err != nil {
		return layout{}, DecodeError{Err: err}
	}
	count := 0
	for sg.Next() {
		count++
	}
	if err := sg.Err(); err != nil {
		return layout{}, DecodeError{Err: err}
	}
	if count == len(buf) {
		// Every character is exactly one byte; pure single-byte content
		// never needs the block machinery.
		return layout{average: 1, count: count}, nil
	}

	average := int(math.Round(float64(len(buf)) / float64(count)))
	if average < 1 {
		average = 1
	}
	if average > maxCharWidth {
		return layout{}, OverflowError{Quantity: "average character width", Value: int64(average), Limit: maxCharWidth}
	}
	CT().Debugf("layout of %d bytes: %d characters, average width %d", len(buf), count, average)

	l := layout{average: average, count: count}
	if err := sg.Init(buf); err != nil {
		return layout{}, DecodeError{Err: err}
	}
	var current *block // the open run, if any
	correction := 0    // cumulative byte correction of all flushed blocks
	flush := func() {
		if l.blocks == nil {
			l.blocks = redblacktree.NewWithIntComparator()
		}
		l.blocks.Put(int(current.first), current)
		correction += current.correction(average)
		current = nil
	}
	index := 0
	for sg.Next() {
		w := sg.Width()
		switch {
		case w == average:
			// Average-width characters need no block; they close an
			// open run.
			if current != nil {
				flush()
			}
		case current != nil && w == int(current.width) && !current.full():
			current.extend()
		default:
			// Width changed, or the run hit the 16-character cap.
			if current != nil {
				flush()
			}
			b, err := newBlock(index, w, correction)
			if err != nil {
				return layout{}, err
			}
			current = b
		}
		index++
	}
	if err := sg.Err(); err != nil {
		return layout{}, DecodeError{Err: err}
	}
	if current != nil {
		flush()
	}
	if l.blocks != nil {
		CT().Debugf("layout carries %d correction blocks", l.blocks.Size())
	}
	return l, nil
}

package grapheme

import (
	"context"
	"errors"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/rivo/uniseg"
)

// ErrMalformedInput is returned by Init if the buffer is not valid UTF-8.
// ErrNotInitialized is flagged by a segmenter whose Next-function is called
// without first setting an input buffer.
var (
	ErrMalformedInput = errors.New("grapheme segmenter: input is not valid UTF-8")
	ErrNotInitialized = errors.New("grapheme segmenter not initialized; must call Init(...) first")
)

// A Segmenter walks a byte buffer grapheme cluster by grapheme cluster.
// Successive calls to Next() advance to the clusters of the buffer, similar
// to the Scan() function of bufio.Scanner. Clients get the current cluster
// with Bytes() or Text(), and its byte width with Width().
//
// A Segmenter is not safe for concurrent use.
type Segmenter struct {
	graphemes *uniseg.Graphemes // the breaking engine, re-created by Init
	active    []byte            // the most recent cluster
	pos       int               // byte offset just past the active cluster
	err       error
}

// NewSegmenter creates an unpooled Segmenter. Clients will have to call
// Init(...) before using it.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init arms the segmenter for a single forward pass over buf. It rejects
// buffers that are not valid UTF-8 with ErrMalformedInput, in which case
// the segmenter stays unarmed.
//
// Init may be called again, on the same or another buffer; a pass in
// progress is abandoned.
func (sg *Segmenter) Init(buf []byte) error {
	if !utf8.Valid(buf) {
		return ErrMalformedInput
	}
	sg.graphemes = uniseg.NewGraphemes(string(buf))
	sg.active = nil
	sg.pos = 0
	sg.err = nil
	return nil
}

// Next advances the segmenter to the next grapheme cluster, which will then
// be available through Bytes, Text and Width. It returns false when the
// pass is done or the segmenter was never initialized; Err() tells the two
// apart.
func (sg *Segmenter) Next() bool {
	if sg.graphemes == nil {
		sg.err = ErrNotInitialized
		return false
	}
	if !sg.graphemes.Next() {
		return false
	}
	sg.active = sg.graphemes.Bytes()
	sg.pos += len(sg.active)
	return true
}

// Bytes returns the current grapheme cluster. The slice is only valid until
// the next call to Init.
func (sg *Segmenter) Bytes() []byte {
	return sg.active
}

// Text returns the current grapheme cluster as a string.
func (sg *Segmenter) Text() string {
	return string(sg.active)
}

// Width returns the byte width of the current grapheme cluster.
func (sg *Segmenter) Width() int {
	return len(sg.active)
}

// Pos returns the byte offset just past the current grapheme cluster, i.e.
// the sum of the widths seen so far in this pass.
func (sg *Segmenter) Pos() int {
	return sg.pos
}

// Err returns the first error that was encountered by the Segmenter.
func (sg *Segmenter) Err() error {
	return sg.err
}

// Segmenters are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type segmenterPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalSegmenterPool *segmenterPool

func init() {
	globalSegmenterPool = &segmenterPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Segmenter{}, nil
		})
	globalSegmenterPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalSegmenterPool.opool = pool.NewObjectPool(globalSegmenterPool.ctx, factory, config)
}

// BorrowSegmenter returns a Segmenter from a global pool. Callers hand it
// back with Release when the pass is done. The pool is safe for concurrent
// borrowing; the borrowed segmenter itself is not.
func BorrowSegmenter() *Segmenter {
	o, err := globalSegmenterPool.opool.BorrowObject(globalSegmenterPool.ctx)
	if err != nil {
		CT().Errorf("segmenter pool failed, allocating: %v", err)
		return NewSegmenter()
	}
	return o.(*Segmenter)
}

// Release clears the segmenter and puts it back into the pool.
func (sg *Segmenter) Release() {
	sg.graphemes = nil
	sg.active = nil
	sg.pos = 0
	sg.err = nil
	_ = globalSegmenterPool.opool.ReturnObject(globalSegmenterPool.ctx, sg)
}

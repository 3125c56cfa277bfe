/*
Package ustring provides a UTF-8 string value type with near-constant-time
access to user-perceived characters (grapheme clusters).

Description

Indexing into UTF-8 encoded text by character is an O(N) operation when done
naively: characters have variable byte width, and a user-perceived character
may even span several code-points (think of flag emojis or combining marks).
Storing one byte offset per character makes indexed access cheap, but costs
memory proportional to the length of the text.

Type String instead maintains a compact statistical model of the text's byte
layout. A single segmentation pass computes the average character width and
records correction blocks for the runs of characters that deviate from it.
Finding the byte range of character i is then an estimate

  i × averageCharacterSize

plus a correction found by a predecessor search over the blocks. Memory
overhead is proportional to the number of irregular runs, not to the number
of characters. For mostly-regular text (pure ASCII, or runs of same-width
script) the block set stays tiny or empty.

The layout is built lazily on the first query and memoized; appending to the
string invalidates it, and the next query rebuilds it from scratch.

Typical Usage

  s := ustring.FromString("Hello, 世界!")
  n, err := s.Size()        // number of user-perceived characters
  c, err := s.At(7)         // the grapheme cluster "世"
  c, err = s.At(-1)         // negative indices count from the end

Grapheme cluster boundaries are determined by package grapheme of this
module, which implements the segmenter boundary on top of a UAX#29
segmentation library.

Threading

A String is a plain value with an internal memoization cache and no locking.
The first call to Size, IsASCII or At may write to the cache; concurrent use
of the same value therefore needs external synchronization, or a
freeze-then-share discipline: force evaluation with a first query, then
share read-only. Copies obtained before evaluation carry independent caches.

____________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Daniil Gavrilikhin

*/
package ustring

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

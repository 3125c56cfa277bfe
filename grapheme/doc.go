/*
Package grapheme segments UTF-8 byte buffers into grapheme clusters.

It is the boundary between the layout machinery of package ustring and the
Unicode Annex #29 cluster segmentation, which is consumed as a black box
(currently github.com/rivo/uniseg). Clients of this package see a
bufio.Scanner-like API and never the underlying library:

  sg := grapheme.NewSegmenter()
  if err := sg.Init(input); err != nil { … }
  for sg.Next() {
      // do something with sg.Bytes() or sg.Width()
  }

A segmenter performs exactly one forward pass per Init; it never rewinds.
Init re-arms a segmenter for a fresh pass, possibly over a new buffer.

Segmenters are short-lived objects that tend to be created in bursts (one
or two per layout build). A global pool is provided to avoid re-allocating
them; see BorrowSegmenter and Release.

____________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Daniil Gavrilikhin

*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

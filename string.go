package ustring

import (
	"bytes"
	"io"

	"golang.org/x/text/unicode/norm"
)

// String is a UTF-8 string value addressed by user-perceived characters
// (grapheme clusters) instead of bytes. The zero value is an empty string.
//
// String owns its byte buffer together with a lazily evaluated layout cache
// (see the package documentation for the threading contract). Content is
// assumed to be valid UTF-8; no validation happens at construction. A buffer
// the segmenter cannot decode surfaces as a DecodeError from the first
// query that forces evaluation.
type String struct {
	bytes []byte
	lay   layout
}

// FromASCII creates a String from content known to consist of single-byte
// characters only. No validation is performed; this is the caller's
// responsibility. The layout is set up directly, so no query on the result
// ever triggers a segmentation pass.
func FromASCII(b []byte) String {
	buf := make([]byte, len(b))
	copy(buf, b)
	return String{bytes: buf, lay: layout{average: 1, count: len(buf)}}
}

// Repeat creates a String of count repetitions of the single-byte character
// c, with the same pre-evaluated layout as FromASCII.
func Repeat(c byte, count int) String {
	return String{bytes: bytes.Repeat([]byte{c}, count), lay: layout{average: 1, count: count}}
}

// FromString creates a String from a Go string holding UTF-8 encoded
// characters. The layout starts out unevaluated.
func FromString(s string) String {
	return String{bytes: []byte(s)}
}

// FromBytes creates a String from UTF-8 encoded bytes. A private copy of b
// is taken. The layout starts out unevaluated.
func FromBytes(b []byte) String {
	buf := make([]byte, len(b))
	copy(buf, b)
	return String{bytes: buf}
}

// IsEmpty reports whether the string holds no bytes. Independent of the
// layout; never triggers evaluation.
func (s *String) IsEmpty() bool {
	return len(s.bytes) == 0
}

// Size returns the number of user-perceived characters. The first call
// after construction or mutation is O(N); subsequent calls answer from the
// memoized layout in O(1).
func (s *String) Size() (int, error) {
	l, err := s.layout()
	if err != nil {
		return 0, err
	}
	return l.count, nil
}

// IsASCII reports whether every character of the string occupies a single
// byte. Like Size, the first call may be O(N).
func (s *String) IsASCII() (bool, error) {
	l, err := s.layout()
	if err != nil {
		return false, err
	}
	return l.isASCII(), nil
}

// At returns the grapheme cluster at the given character index. A negative
// index counts from the end: At(-1) is the last character. Out-of-range
// indices yield a BoundsError.
//
// After the layout has been evaluated a call is O(log blockCount).
func (s *String) At(index int) (string, error) {
	l, err := s.layout()
	if err != nil {
		return "", err
	}
	i := index
	if index < 0 {
		i = l.count + index
		if i < 0 {
			return "", BoundsError{Index: index, Size: l.count}
		}
	}
	offset, width, err := l.byteRange(i)
	if err != nil {
		return "", err
	}
	return string(s.bytes[offset : offset+width]), nil
}

// AbsoluteIndex resolves a non-positive index relative to the end of the
// string to an absolute character index: AbsoluteIndex(0) is the end
// position, AbsoluteIndex(-1) the index of the last character. A positive
// argument, or a magnitude exceeding Size, is a BoundsError.
func (s *String) AbsoluteIndex(relative int) (int, error) {
	l, err := s.layout()
	if err != nil {
		return 0, err
	}
	if relative > 0 || -relative > l.count {
		return 0, BoundsError{Index: relative, Size: l.count}
	}
	return l.count + relative, nil
}

// Append concatenates UTF-8 encoded bytes to the end of the string. The
// layout is invalidated conservatively: if it was evaluated, or if the
// appended content is at least as large as the existing buffer, the next
// query rebuilds it from scratch. There is no incremental patching.
func (s *String) Append(b []byte) {
	if len(b) == 0 {
		return
	}
	if len(b) >= len(s.bytes) || s.lay.evaluated() {
		s.lay = layout{}
	}
	s.bytes = append(s.bytes, b...)
}

// Bytes returns the raw UTF-8 encoded content. The slice aliases the
// string's buffer and must not be modified.
func (s *String) Bytes() []byte {
	return s.bytes
}

// String returns the content as a Go string.
func (s *String) String() string {
	return string(s.bytes)
}

// Equal reports whether two strings hold the same bytes.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.bytes, other.bytes)
}

// Normalize returns a copy of the string normalized to the given Unicode
// normalization form. The copy starts with an unevaluated layout, as
// normalization may change both byte widths and cluster boundaries.
func (s *String) Normalize(form norm.Form) String {
	return String{bytes: form.Bytes(s.bytes)}
}

// WriteTo writes the raw content to w. It implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.bytes)
	return int64(n), err
}

// ReadFrom appends the remaining content of r to the string, with the same
// invalidation rules as Append. It implements io.ReaderFrom.
func (s *String) ReadFrom(r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	s.Append(b)
	return int64(len(b)), err
}

// layout returns the memoized layout, building it first if a mutation (or
// construction) left it unevaluated. A failed build leaves the layout
// unevaluated, so the error will resurface on the next query.
func (s *String) layout() (*layout, error) {
	if !s.lay.evaluated() {
		l, err := layoutOf(s.bytes)
		if err != nil {
			return nil, err
		}
		s.lay = l
	}
	return &s.lay, nil
}

package grapheme

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestSegmenterASCII(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sg := NewSegmenter()
	if err := sg.Init([]byte("Hello")); err != nil {
		t.Fatalf("unexpected Init error: %v", err)
	}
	n := 0
	for sg.Next() {
		if sg.Width() != 1 {
			t.Errorf("expected width 1 for '%s', have %d", sg.Text(), sg.Width())
		}
		n++
	}
	if n != 5 {
		t.Errorf("expected 5 clusters, have %d", n)
	}
	if sg.Pos() != 5 {
		t.Errorf("expected final position 5, have %d", sg.Pos())
	}
}

func TestSegmenterCJK(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sg := NewSegmenter()
	if err := sg.Init([]byte("世界")); err != nil {
		t.Fatalf("unexpected Init error: %v", err)
	}
	n := 0
	for sg.Next() {
		t.Logf("cluster '%s' with width %d", sg.Text(), sg.Width())
		if sg.Width() != 3 {
			t.Errorf("expected width 3 for '%s', have %d", sg.Text(), sg.Width())
		}
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 clusters, have %d", n)
	}
}

func TestSegmenterFlagEmoji(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// A flag is two regional indicators forming a single cluster.
	sg := NewSegmenter()
	if err := sg.Init([]byte("🇩🇪!")); err != nil {
		t.Fatalf("unexpected Init error: %v", err)
	}
	if !sg.Next() {
		t.Fatalf("expected a first cluster")
	}
	if sg.Text() != "🇩🇪" || sg.Width() != 8 {
		t.Errorf("expected flag cluster of width 8, have '%s' with width %d", sg.Text(), sg.Width())
	}
	if !sg.Next() {
		t.Fatalf("expected a second cluster")
	}
	if sg.Text() != "!" {
		t.Errorf("expected '!', have '%s'", sg.Text())
	}
	if sg.Next() {
		t.Errorf("expected pass to be done")
	}
}

func TestSegmenterMalformedInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sg := NewSegmenter()
	err := sg.Init([]byte{0xff, 0xfe, 'a'})
	if err != ErrMalformedInput {
		t.Errorf("expected ErrMalformedInput, have %v", err)
	}
	if sg.Next() {
		t.Errorf("unarmed segmenter should not produce clusters")
	}
	if sg.Err() != ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, have %v", sg.Err())
	}
}

func TestSegmenterReInit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sg := NewSegmenter()
	if err := sg.Init([]byte("abc")); err != nil {
		t.Fatalf("unexpected Init error: %v", err)
	}
	sg.Next()
	if err := sg.Init([]byte("xy")); err != nil {
		t.Fatalf("unexpected re-Init error: %v", err)
	}
	n := 0
	for sg.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 clusters after re-Init, have %d", n)
	}
	if sg.Pos() != 2 {
		t.Errorf("expected position 2 after re-Init, have %d", sg.Pos())
	}
}

func TestSegmenterPool(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sg := BorrowSegmenter()
	if sg == nil {
		t.Fatalf("borrowed segmenter should not be nil")
	}
	if err := sg.Init([]byte("пример")); err != nil {
		t.Fatalf("unexpected Init error: %v", err)
	}
	n := 0
	for sg.Next() {
		n++
	}
	if n != 6 {
		t.Errorf("expected 6 clusters, have %d", n)
	}
	sg.Release()
	// A released segmenter comes back cleared.
	sg2 := BorrowSegmenter()
	defer sg2.Release()
	if sg2.Err() != nil || sg2.Width() != 0 || sg2.Pos() != 0 {
		t.Errorf("pooled segmenter not cleared: err=%v width=%d pos=%d", sg2.Err(), sg2.Width(), sg2.Pos())
	}
}

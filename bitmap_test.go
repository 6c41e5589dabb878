package termraster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewBitmap(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	bm := NewBitmap(data, 3)
	if bm.Width() != 3 || bm.Height() != 2 {
		t.Errorf("expected 3x2, got %dx%d", bm.Width(), bm.Height())
	}
	if bm.At(2, 1) != 6 {
		t.Errorf("At(2, 1) = %d, want 6", bm.At(2, 1))
	}

	// Ownership: the bitmap shares the caller's bytes.
	data[0] = 99
	if bm.At(0, 0) != 99 {
		t.Error("NewBitmap should wrap data without copying")
	}
}

func TestNewBitmapTruncatesPartialRow(t *testing.T) {
	bm := NewBitmap(make([]byte, 7), 3)
	if bm.Height() != 2 || len(bm.Data()) != 6 {
		t.Errorf("expected 3x2 with 6 bytes, got %dx%d with %d bytes", bm.Width(), bm.Height(), len(bm.Data()))
	}
}

func TestNewBitmapZeroWidth(t *testing.T) {
	bm := NewBitmap([]byte{1, 2}, 0)
	if !bm.Empty() || bm.Width() != 0 || bm.Height() != 0 {
		t.Errorf("zero-width bitmap should be empty, got %dx%d", bm.Width(), bm.Height())
	}
}

func TestBitmapSetAtBounds(t *testing.T) {
	bm := NewBlankBitmap(4, 4)
	bm.Set(1, 2, 200)
	if bm.At(1, 2) != 200 {
		t.Errorf("At(1, 2) = %d, want 200", bm.At(1, 2))
	}
	bm.Set(-1, 0, 1)
	bm.Set(4, 0, 1)
	if bm.At(-1, 0) != 0 || bm.At(0, 4) != 0 {
		t.Error("out-of-range access should read 0")
	}
	for i, v := range bm.Data() {
		if v != 0 && i != 2*4+1 {
			t.Errorf("out-of-range Set wrote index %d", i)
		}
	}
}

func TestBitmapMove(t *testing.T) {
	bm := NewBlankBitmap(2, 2)
	bm.Fill(7)

	moved := bm.Move()
	if !bm.Empty() || bm.Width() != 0 || bm.Height() != 0 {
		t.Error("source bitmap should be empty after Move")
	}
	if moved.Width() != 2 || moved.Height() != 2 || moved.At(1, 1) != 7 {
		t.Errorf("moved bitmap lost data: %dx%d", moved.Width(), moved.Height())
	}
}

func TestBitmapCloneIndependent(t *testing.T) {
	bm := NewBlankBitmap(2, 2)
	bm.Fill(10)
	clone := bm.Clone()
	bm.Fill(0)
	if clone.At(0, 0) != 10 {
		t.Errorf("clone should not be affected, got %d", clone.At(0, 0))
	}
}

func TestBitmapRelease(t *testing.T) {
	bm := NewBlankBitmap(3, 3)
	bm.Release()
	bm.Release()
	if !bm.Empty() || bm.Bounds() != (image.Rectangle{}) {
		t.Errorf("released bitmap should be empty, bounds %v", bm.Bounds())
	}
}

func TestNewBitmapFromAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(10, 10, 12, 11))
	img.SetAlpha(11, 10, color.Alpha{A: 128})
	bm := NewBitmapFromAlpha(img)
	if bm.Width() != 2 || bm.Height() != 1 {
		t.Fatalf("expected 2x1, got %dx%d", bm.Width(), bm.Height())
	}
	if bm.At(0, 0) != 0 || bm.At(1, 0) != 128 {
		t.Errorf("alpha not copied: %v", bm.Data())
	}
}

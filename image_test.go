package termraster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() *Image {
	img := NewImage(3, 2)
	img.SetRGB(0, 0, RGB{255, 0, 0})
	img.SetRGB(1, 0, RGB{0, 255, 0})
	img.SetRGB(2, 0, RGB{0, 0, 255})
	img.SetRGB(0, 1, RGB{10, 20, 30})
	img.SetRGB(2, 1, White)
	return img
}

func TestNewImage(t *testing.T) {
	img := NewImage(4, 3)
	if img.Width() != 4 || img.Height() != 3 || len(img.Pix()) != 36 {
		t.Errorf("NewImage(4,3): %dx%d, %d bytes", img.Width(), img.Height(), len(img.Pix()))
	}
	for _, p := range img.Pix() {
		if p != 0 {
			t.Fatal("new image is not black")
		}
	}

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		img := NewImage(dims[0], dims[1])
		if img.Width() != 0 || img.Height() != 0 || len(img.Pix()) != 0 {
			t.Errorf("NewImage(%d,%d) is not empty", dims[0], dims[1])
		}
	}
}

func TestImageSetRGBOutOfRange(t *testing.T) {
	img := NewImage(2, 2)
	img.SetRGB(-1, 0, White)
	img.SetRGB(2, 0, White)
	img.SetRGB(0, 2, White)
	for _, p := range img.Pix() {
		if p != 0 {
			t.Fatal("out-of-range SetRGB wrote a pixel")
		}
	}
	if got := img.RGBAt(5, 5); got != Black {
		t.Errorf("RGBAt outside = %v, want black", got)
	}
}

func TestImageInterface(t *testing.T) {
	var _ image.Image = (*Image)(nil)

	img := testImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	rgba := img.ToRGBA()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got, want := FromColor(rgba.At(x, y)), img.RGBAt(x, y); got != want {
				t.Errorf("ToRGBA (%d,%d) = %v, want %v", x, y, got, want)
			}
			if _, _, _, a := rgba.At(x, y).RGBA(); a != 0xffff {
				t.Errorf("ToRGBA (%d,%d) not opaque", x, y)
			}
		}
	}
}

func TestImageEncode(t *testing.T) {
	img := testImage()

	tests := []struct {
		format ImageFormat
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{PNG, func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{BMP, func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := img.Encode(&buf, tt.format); err != nil {
				t.Fatalf("Encode() = %v", err)
			}
			dec, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if dec.Bounds().Dx() != 3 || dec.Bounds().Dy() != 2 {
				t.Fatalf("decoded bounds %v", dec.Bounds())
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					if got, want := FromColor(dec.At(x, y)), img.RGBAt(x, y); got != want {
						t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}

	if err := img.Encode(&bytes.Buffer{}, ImageFormat(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown format: %v, want ErrInvalidArgument", err)
	}
}

func TestImageSave(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	pngPath := filepath.Join(dir, "out.png")
	if err := img.SavePNG(pngPath); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	bmpPath := filepath.Join(dir, "out.bmp")
	if err := img.SaveBMP(bmpPath); err != nil {
		t.Fatalf("SaveBMP() = %v", err)
	}

	data, err := os.ReadFile(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Error("SaveBMP did not write a BMP header")
	}

	if err := img.SavePNG(filepath.Join(dir, "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}

func TestImageScale(t *testing.T) {
	img := testImage()

	same := img.Scale(0)
	if same.Bounds().Dx() != 3 {
		t.Errorf("Scale(0) width = %d, want 3", same.Bounds().Dx())
	}

	big := img.Scale(3)
	if big.Bounds() != image.Rect(0, 0, 9, 6) {
		t.Fatalf("Scale(3) bounds = %v", big.Bounds())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 9; x++ {
			if got, want := FromColor(big.At(x, y)), img.RGBAt(x/3, y/3); got != want {
				t.Fatalf("scaled (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageRelease(t *testing.T) {
	img := testImage()
	img.Release()
	img.Release()
	if img.Width() != 0 || img.Height() != 0 || img.Pix() != nil {
		t.Error("Release did not empty the image")
	}
	img.Fill(White)
	img.SetRGB(0, 0, White)
}

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/termraster"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"8x8", 8, 8, false},
		{"7X13", 7, 13, false},
		{"8", 0, 0, true},
		{"0x8", 0, 0, true},
		{"8x-1", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseCell(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCell(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseCell(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestLookupCodePage(t *testing.T) {
	for name, want := range map[string]*charmap.Charmap{
		"latin1": charmap.ISO8859_1,
		"CP437":  charmap.CodePage437,
		"850":    charmap.CodePage850,
	} {
		got, err := lookupCodePage(name)
		if err != nil || got != want {
			t.Errorf("lookupCodePage(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := lookupCodePage("ebcdic"); err == nil {
		t.Error("unknown code page accepted")
	}
}

func TestLayout(t *testing.T) {
	fg, bg := termraster.White, termraster.Black
	scr, err := layout(strings.NewReader("hello world\nab\tc\nthird\nclipped"), 6, 3, fg, bg, charmap.ISO8859_1)
	if err != nil {
		t.Fatal(err)
	}
	want := "hello \nab    \nthird \n"
	if got := scr.Printable(); got != want {
		t.Errorf("Printable() = %q, want %q", got, want)
	}
}

func TestSaveScaled(t *testing.T) {
	img := termraster.NewImage(2, 1)
	img.SetRGB(0, 0, termraster.RGB{R: 255})
	path := filepath.Join(t.TempDir(), "out.png")

	if err := save(img, path, 3); err != nil {
		t.Fatalf("save() = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if dec.Bounds().Dx() != 6 || dec.Bounds().Dy() != 3 {
		t.Errorf("scaled bounds = %v, want 6x3", dec.Bounds())
	}
	if got := termraster.FromColor(dec.At(2, 2)); got != (termraster.RGB{R: 255}) {
		t.Errorf("scaled pixel = %v", got)
	}
}

func TestLoadFontDefault(t *testing.T) {
	font, err := loadFont("", "ignored", 0, charmap.ISO8859_1)
	if err != nil {
		t.Fatal(err)
	}
	if font.CellWidth() != 7 || font.CellHeight() != 13 {
		t.Errorf("default font cell = %dx%d", font.CellWidth(), font.CellHeight())
	}
	if _, err := loadFont(filepath.Join(t.TempDir(), "missing.png"), "8x8", 0, nil); err == nil {
		t.Error("missing atlas accepted")
	}
}

func TestLoadFontFollowsCodePage(t *testing.T) {
	fg, bg := termraster.White, termraster.Black
	for _, name := range []string{"latin1", "cp437", "cp850"} {
		t.Run(name, func(t *testing.T) {
			cm, err := lookupCodePage(name)
			if err != nil {
				t.Fatal(err)
			}
			font, err := loadFont("", "", 13, cm)
			if err != nil {
				t.Fatal(err)
			}
			scr, err := layout(strings.NewReader("é"), 1, 1, fg, bg, cm)
			if err != nil {
				t.Fatal(err)
			}
			img := termraster.NewImage(font.CellWidth(), font.CellHeight())
			if err := termraster.RenderImage(scr, img, font, false); err != nil {
				t.Fatal(err)
			}
			inked := 0
			for y := 0; y < img.Height(); y++ {
				for x := 0; x < img.Width(); x++ {
					if img.RGBAt(x, y) == fg {
						inked++
					}
				}
			}
			if inked == 0 {
				t.Error("é rendered as background")
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("hello\nworld\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := config{
		cols: 10, rows: 2,
		fg: "#fff", bg: "#000",
		codePage: "cp437",
		blend:    "scale",
		scale:    2,
		output:   filepath.Join(dir, "out.bmp"),
		input:    input,
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run() = %v", err)
	}
	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Error("output is not a BMP")
	}

	cfg.blend = "multiply"
	if err := run(cfg); err == nil {
		t.Error("bad -blend accepted")
	}
}

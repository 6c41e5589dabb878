// Command termrender renders text through a bitmap font into an image,
// the way a terminal would draw its screen.
//
// Usage:
//
//	termrender [flags] [file]
//
// Text is read from file, or from standard input when no file is given.
// Each line goes on its own row; lines longer than -cols are clipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/termraster"
	"github.com/gogpu/termraster/fonts"
)

// config holds the parsed command line.
type config struct {
	cols, rows int
	fg, bg     string
	fontPath   string
	cell       string
	size       float64
	codePage   string
	blend      string
	scale      int
	output     string
	dump       bool
	input      string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.cols, "cols", 80, "screen width in cells")
	flag.IntVar(&cfg.rows, "rows", 25, "screen height in cells")
	flag.StringVar(&cfg.fg, "fg", "#c0c0c0", "foreground colour")
	flag.StringVar(&cfg.bg, "bg", "#000000", "background colour")
	flag.StringVar(&cfg.fontPath, "font", "", "font atlas image (PNG or BMP); built-in font when empty")
	flag.StringVar(&cfg.cell, "cell", "8x8", "glyph size in the font atlas, WxH")
	flag.Float64Var(&cfg.size, "size", 0, "pixel size of the built-in Go Mono font; 0 uses the ASCII-only 7x13 bitmap font")
	flag.StringVar(&cfg.codePage, "codepage", "latin1", "code page mapping text to character codes: latin1, cp437 or cp850")
	flag.StringVar(&cfg.blend, "blend", "none", "ink blending: none, scale or alpha")
	flag.IntVar(&cfg.scale, "scale", 1, "integer upscale of the output image")
	flag.StringVar(&cfg.output, "out", "screen.png", "output file (.png or .bmp)")
	flag.BoolVar(&cfg.dump, "print", false, "also print the screen as text")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	cfg.input = flag.Arg(0)

	if *verbose {
		termraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	fg, err := termraster.ParseHex(cfg.fg)
	if err != nil {
		return fmt.Errorf("-fg: %w", err)
	}
	bg, err := termraster.ParseHex(cfg.bg)
	if err != nil {
		return fmt.Errorf("-bg: %w", err)
	}
	mode, err := termraster.ParseBlendMode(cfg.blend)
	if err != nil {
		return fmt.Errorf("-blend: %w", err)
	}
	cm, err := lookupCodePage(cfg.codePage)
	if err != nil {
		return fmt.Errorf("-codepage: %w", err)
	}

	font, err := loadFont(cfg.fontPath, cfg.cell, cfg.size, cm)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer font.Release()

	in, err := openInput(cfg.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	scr, err := layout(in, cfg.cols, cfg.rows, fg, bg, cm)
	_ = in.Close()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	defer scr.Release()

	img := termraster.NewImage(scr.Width()*font.CellWidth(), scr.Height()*font.CellHeight())
	defer img.Release()
	if err := termraster.NewRasterizer(font, termraster.WithBlend(mode)).RenderImage(scr, img); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := save(img, cfg.output, cfg.scale); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if cfg.dump {
		fmt.Print(scr.Printable())
	}

	log.Printf("Screen saved to %s (%dx%d cells, %dx%d pixels)\n",
		cfg.output, scr.Width(), scr.Height(), img.Width()*max(cfg.scale, 1), img.Height()*max(cfg.scale, 1))
	return nil
}

func lookupCodePage(name string) (*charmap.Charmap, error) {
	switch strings.ToLower(name) {
	case "latin1", "iso8859-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp437", "437":
		return charmap.CodePage437, nil
	case "cp850", "850":
		return charmap.CodePage850, nil
	default:
		return nil, fmt.Errorf("unknown code page %q", name)
	}
}

// parseCell parses a "WxH" glyph size.
func parseCell(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("cell size %q is not WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("cell width %q is not a positive integer", ws)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("cell height %q is not a positive integer", hs)
	}
	return w, h, nil
}

// loadFont decodes the atlas at path, or builds the built-in font with
// codes mapped through cm so it agrees with the text layout.
func loadFont(path, cell string, size float64, cm *charmap.Charmap) (*termraster.Font[uint8], error) {
	if path == "" {
		if size > 0 {
			return fonts.GoMono[uint8](size, cm)
		}
		return fonts.DefaultCodePage[uint8](cm), nil
	}
	w, h, err := parseCell(cell)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()
	font, err := termraster.DecodeFont[uint8](f, w, h)
	if err != nil {
		return nil, err
	}
	if font.Count() == 0 {
		return nil, fmt.Errorf("%s holds no %dx%d glyphs", path, w, h)
	}
	return font, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path) //nolint:gosec // path is user-provided intentionally
}

// layout writes one input line per row, clipping at the grid edges.
func layout(r io.Reader, cols, rows int, fg, bg termraster.RGB, cm *charmap.Charmap) (*termraster.Screen[uint8], error) {
	scr := termraster.NewScreen[uint8](cols, rows)
	scr.Fill(termraster.NewCell[uint8](' ', fg, bg))

	sc := bufio.NewScanner(r)
	for y := 0; y < scr.Height() && sc.Scan(); y++ {
		line := strings.ReplaceAll(sc.Text(), "\t", "        ")
		if _, err := scr.WriteString(0, y, line, fg, bg, cm); err != nil {
			return nil, err
		}
	}
	return scr, sc.Err()
}

func save(img *termraster.Image, path string, scale int) (err error) {
	format := termraster.PNG
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		format = termraster.BMP
	}
	if scale <= 1 {
		if format == termraster.BMP {
			return img.SaveBMP(path)
		}
		return img.SavePNG(path)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	scaled := img.Scale(scale)
	if format == termraster.BMP {
		return bmp.Encode(f, scaled)
	}
	return png.Encode(f, scaled)
}

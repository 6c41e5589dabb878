// Package fonts builds termraster font tables from golang.org/x/image
// font faces.
//
// A face is rasterised once per character code into cell-sized ink
// masks, so any fixed-width bitmap face (basicfont, or an opentype face
// at a fixed size) can feed the software rasterizer without an atlas
// image:
//
//	font := fonts.Default[uint8]()
//	img := termraster.NewImage(scr.Width()*font.CellWidth(), scr.Height()*font.CellHeight())
//	err := termraster.RenderImage(scr, img, font, true)
//
// Default is the 7x13 basicfont face and draws printable ASCII only.
// GoMono rasterises the Go Mono outline font at any pixel size and
// covers Latin-1 and the DOS code pages.
//
// Character codes become runes through a code page from
// golang.org/x/text/encoding/charmap, or are taken as code points when
// no code page is given. Codes that map to control or unassigned runes
// keep an empty slot and render as background.
//
// Atlas packs a font back into the 3-channel pixel layout accepted by
// termraster.LoadFont.
package fonts

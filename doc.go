// Package termraster renders a grid of coloured character cells into
// 24-bit pixels with a fixed-size bitmap font.
//
// # Overview
//
// A [Screen] holds cells (character code, foreground and background
// colour). A [Font] holds one single-channel [Bitmap] per character code,
// all sharing one cell size. A [Rasterizer] combines the two and writes
// pixels either into an owned RGB [Image] or into an external buffer with
// a caller-chosen row pitch, such as a locked SDL surface.
//
// # Quick Start
//
//	font := termraster.LoadFont[uint8](atlasPixels, 128, 8, 8, false)
//	scr := termraster.NewScreen[uint8](80, 25)
//	scr.WriteString(0, 0, "hello", termraster.White, termraster.Black, nil)
//
//	img := termraster.NewImage(80*8, 25*8)
//	if err := termraster.RenderImage(scr, img, font, false); err != nil {
//	    return err
//	}
//	img.SavePNG("screen.png")
//
// # Character codes
//
// The code type is a type parameter: Screen[uint8] pairs with a 256-glyph
// code page font, Screen[rune] with a wider table. Codes outside the
// font, or whose slot is empty, render as solid background.
//
// # Blending
//
// [BlendNone] treats ink as a stencil. [BlendScale] multiplies the
// foreground by ink/255 without mixing in the background; this is what
// the blending flag of [RenderImage] and [RenderBuffer] selects.
// [BlendAlpha] is an opt-in true coverage blend.
//
// # Ownership
//
// Screens, fonts, bitmaps and images own their buffers. Release drops a
// buffer early and leaves an empty, still usable value; releasing twice
// is harmless. [Font.Assign] moves a bitmap's buffer into the font, so
// the caller's handle is empty afterwards.
//
// # Concurrency
//
// Nothing here locks. Writers to a Screen or Font must be serialised by
// the caller. Renders only read their inputs, so concurrent renders of
// an unchanged screen and font into different destinations are safe.
package termraster

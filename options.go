package termraster

// RasterizerOption configures a Rasterizer during creation.
//
// Example:
//
//	// Binary stencil into an RGB image (the default)
//	r := termraster.NewRasterizer(font)
//
//	// Ink-weighted foreground into a 32-bit BGRA surface
//	r := termraster.NewRasterizer(font,
//	    termraster.WithBlend(termraster.BlendScale),
//	    termraster.WithFormat(termraster.FormatBGRA8))
type RasterizerOption func(*rasterizerOptions)

// rasterizerOptions holds optional configuration for Rasterizer creation.
type rasterizerOptions struct {
	blend  BlendMode
	format PixelFormat
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() rasterizerOptions {
	return rasterizerOptions{
		blend:  BlendNone,
		format: FormatRGB8,
	}
}

// WithBlend sets how ink values combine foreground and background.
func WithBlend(mode BlendMode) RasterizerOption {
	return func(o *rasterizerOptions) {
		o.blend = mode
	}
}

// WithFormat sets the pixel layout used by RenderBuffer. RenderImage
// always writes R, G, B.
func WithFormat(f PixelFormat) RasterizerOption {
	return func(o *rasterizerOptions) {
		o.format = f
	}
}

// WithByteOrder selects the 24-bit layout used by RenderBuffer from a
// surface byte order. It is shorthand for WithFormat(order.Format()).
func WithByteOrder(order ByteOrder) RasterizerOption {
	return WithFormat(order.Format())
}

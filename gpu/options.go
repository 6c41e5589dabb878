package gpu

import "github.com/gogpu/gputypes"

// Option configures an Uploader.
type Option func(*options)

type options struct {
	label   string
	format  gputypes.TextureFormat
	filter  gputypes.FilterMode
	address gputypes.AddressMode
}

func defaultOptions() options {
	return options{
		label:   "termraster_screen",
		format:  gputypes.TextureFormatRGBA8Unorm,
		filter:  gputypes.FilterModeNearest,
		address: gputypes.AddressModeRepeat,
	}
}

// WithLabel sets the debug label prefix of the created GPU objects.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithSRGB stores the texture as sRGB so sampling returns linear values.
func WithSRGB(srgb bool) Option {
	return func(o *options) {
		if srgb {
			o.format = gputypes.TextureFormatRGBA8UnormSrgb
		} else {
			o.format = gputypes.TextureFormatRGBA8Unorm
		}
	}
}

// WithFilter sets the sampler's min, mag and mipmap filter.
// The default is nearest.
func WithFilter(f gputypes.FilterMode) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithAddressMode sets the sampler's address mode on all axes.
// The default is repeat.
func WithAddressMode(m gputypes.AddressMode) Option {
	return func(o *options) {
		o.address = m
	}
}

//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/termraster"
	"github.com/gogpu/wgpu/hal"
)

// Common errors returned by Uploader operations.
var (
	// ErrNilImage is returned when Upload is given a nil or empty image.
	ErrNilImage = errors.New("gpu: nil or empty image")

	// ErrClosed is returned when an Uploader is used after Close.
	ErrClosed = errors.New("gpu: uploader is closed")

	// ErrNilDevice is returned when NewUploader is given a nil device or queue.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrNoHALProvider is returned when a DeviceProvider does not expose
	// its HAL device and queue.
	ErrNoHALProvider = errors.New("gpu: provider does not expose HAL device and queue")
)

// halProvider is implemented by device providers that give direct HAL
// access, such as the gogpu application context.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Uploader copies rendered images into a GPU texture. It owns the
// texture, its view and the sampler, not the device.
type Uploader struct {
	mu      sync.Mutex
	device  hal.Device
	queue   hal.Queue
	opts    options
	texture hal.Texture
	view    hal.TextureView
	sampler hal.Sampler
	width   int
	height  int
	uploads int
	closed  bool
}

// NewUploader creates an uploader on device and queue. The sampler is
// created immediately; the texture is created by the first Upload.
func NewUploader(device hal.Device, queue hal.Queue, opts ...Option) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        o.label + "_sampler",
		AddressModeU: o.address,
		AddressModeV: o.address,
		AddressModeW: o.address,
		MagFilter:    o.filter,
		MinFilter:    o.filter,
		MipmapFilter: o.filter,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create sampler: %w", err)
	}

	return &Uploader{
		device:  device,
		queue:   queue,
		opts:    o,
		sampler: sampler,
	}, nil
}

// NewUploaderFromProvider creates an uploader on the device shared by a
// host application. The provider must also implement HalDevice() and
// HalQueue() returning hal.Device and hal.Queue.
func NewUploaderFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Uploader, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrNoHALProvider)
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	return NewUploader(device, queue, opts...)
}

// Upload writes img into the texture, creating it on first use and
// recreating it when the image size changes.
func (u *Uploader) Upload(img *termraster.Image) error {
	if img == nil || img.Width() == 0 || img.Height() == 0 {
		return ErrNilImage
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return ErrClosed
	}

	w, h := img.Width(), img.Height()
	if u.texture == nil || u.width != w || u.height != h {
		u.destroyTexture()
		if err := u.createTexture(w, h); err != nil {
			return err
		}
	}

	width := uint32(w)  //nolint:gosec // image dimensions always fit uint32
	height := uint32(h) //nolint:gosec // image dimensions always fit uint32

	u.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  u.texture,
			MipLevel: 0,
		},
		rgbToRGBA(img.Pix(), w, h),
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  width * 4,
			RowsPerImage: height,
		},
		&hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	)
	u.uploads++
	return nil
}

func (u *Uploader) createTexture(w, h int) error {
	tex, err := u.device.CreateTexture(&hal.TextureDescriptor{
		Label: u.opts.label,
		Size: hal.Extent3D{
			Width:              uint32(w), //nolint:gosec // image dimensions always fit uint32
			Height:             uint32(h), //nolint:gosec // image dimensions always fit uint32
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        u.opts.format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create %dx%d texture: %w", w, h, err)
	}

	view, err := u.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         u.opts.label + "_view",
		Format:        u.opts.format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		u.device.DestroyTexture(tex)
		return fmt.Errorf("gpu: create texture view: %w", err)
	}

	u.texture, u.view = tex, view
	u.width, u.height = w, h
	termraster.Logger().Debug("gpu: screen texture created",
		slog.Int("width", w), slog.Int("height", h),
		slog.String("label", u.opts.label))
	return nil
}

func (u *Uploader) destroyTexture() {
	if u.view != nil {
		u.device.DestroyTextureView(u.view)
		u.view = nil
	}
	if u.texture != nil {
		u.device.DestroyTexture(u.texture)
		u.texture = nil
	}
	u.width, u.height = 0, 0
}

// Texture returns the current texture, or nil before the first Upload.
func (u *Uploader) Texture() hal.Texture {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.texture
}

// View returns the view of the current texture, or nil before the
// first Upload.
func (u *Uploader) View() hal.TextureView {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.view
}

// Sampler returns the sampler, or nil after Close.
func (u *Uploader) Sampler() hal.Sampler {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sampler
}

// Size returns the texture dimensions, zero before the first Upload.
func (u *Uploader) Size() (width, height int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.width, u.height
}

// Uploads returns the number of successful uploads.
func (u *Uploader) Uploads() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uploads
}

// Close destroys the texture, view and sampler. The device is left
// alone. Close is idempotent.
func (u *Uploader) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return
	}
	u.closed = true
	u.destroyTexture()
	if u.sampler != nil {
		u.device.DestroySampler(u.sampler)
		u.sampler = nil
	}
}

// rgbToRGBA expands packed RGB pixels to RGBA with alpha 255.
func rgbToRGBA(rgb []byte, w, h int) []byte {
	n := w * h
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		out[i*4+0] = rgb[i*3+0]
		out[i*4+1] = rgb[i*3+1]
		out[i*4+2] = rgb[i*3+2]
		out[i*4+3] = 255
	}
	return out
}

// Package gpu uploads rendered termraster images to GPU textures.
//
// The rasterizer itself runs on the CPU. This package is the final hop
// for hosts that present the result with WebGPU: it copies an RGB
// termraster.Image into an RGBA8 texture (alpha 255) and keeps a sampler
// configured for crisp glyphs (nearest filtering, repeat addressing).
//
// # Usage
//
//	up, err := gpu.NewUploaderFromProvider(provider)
//	if err != nil {
//	    return err
//	}
//	defer up.Close()
//
//	if err := termraster.RenderImage(scr, img, font, true); err != nil {
//	    return err
//	}
//	if err := up.Upload(img); err != nil {
//	    return err
//	}
//	// bind up.View() and up.Sampler() and draw with the blit shader
//
// The provider is usually a gogpu application; it must expose its HAL
// device and queue through HalDevice() and HalQueue(). NewUploader
// accepts a hal.Device and hal.Queue directly.
//
// # Blit shader
//
// BlitShaderWGSL is a full-target textured triangle (vs_main, fs_main)
// that samples binding 0 (texture) with binding 1 (sampler).
// CompileBlitShader compiles it to SPIR-V with naga, and
// Uploader.CreateBlitShader creates the shader module on the uploader's
// device.
//
// # Thread Safety
//
// Uploader methods are safe for concurrent use. The texture returned by
// Texture is replaced when an upload changes the image size.
package gpu

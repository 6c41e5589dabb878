//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// BlitShaderWGSL draws a texture over the whole render target.
//
//go:embed shaders/blit.wgsl
var BlitShaderWGSL string

// CompileBlitShader compiles BlitShaderWGSL to SPIR-V words.
func CompileBlitShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(BlitShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile blit shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// CreateBlitShader compiles the blit shader and creates a shader module
// on the uploader's device. The caller owns the module.
func (u *Uploader) CreateBlitShader() (hal.ShaderModule, error) {
	u.mu.Lock()
	closed := u.closed
	u.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	code, err := CompileBlitShader()
	if err != nil {
		return nil, err
	}
	module, err := u.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  u.opts.label + "_blit",
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create blit shader module: %w", err)
	}
	return module, nil
}

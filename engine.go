package stencil

import (
	"errors"
	"fmt"

	"github.com/gogpu/stencil/internal/gray"
)

// Input validation errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or the data length does not match width*height*4.
	ErrInvalidDimensions = errors.New("stencil: invalid dimensions")

	// ErrEmptyBuffer is returned for a nil or zero-length input buffer.
	// A degenerate buffer is rejected outright rather than treated as a
	// trivially successful no-op.
	ErrEmptyBuffer = errors.New("stencil: empty buffer")
)

// DefaultThreshold is the luminance split point between opaque black and
// transparent, on a 0-255 scale. An empirically tuned constant.
const DefaultThreshold = 60.0

// Engine performs Sierra error-diffusion binarization.
//
// An Engine holds no per-call state: each invocation owns its own
// intermediate luminance buffer, so a single Engine is safe for concurrent
// use across distinct pixel buffers. Within one buffer the scan is strictly
// sequential, because each pixel's diffusion write is a read dependency for
// pixels visited later.
type Engine struct {
	threshold float64
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{threshold: o.threshold}
}

// Threshold returns the luminance threshold this engine classifies with.
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// Dither converts pm in place into an alpha stencil: every pixel becomes
// RGB (0,0,0) with alpha either 255 (below-threshold luminance) or 0. The
// pixmap's dimensions are unchanged.
func (e *Engine) Dither(pm *Pixmap) error {
	if pm == nil {
		return ErrEmptyBuffer
	}
	return e.DitherBuffer(pm.width, pm.height, pm.data)
}

// DitherBuffer is the raw-buffer form of [Engine.Dither]: data is an
// interleaved row-major RGBA buffer of exactly width*height*4 bytes, mutated
// in place. Validation failures leave data untouched.
func (e *Engine) DitherBuffer(width, height int, data []uint8) error {
	if len(data) == 0 {
		return ErrEmptyBuffer
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d (both must be > 0)", ErrInvalidDimensions, width, height)
	}
	if len(data) != width*height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d, want %d",
			ErrInvalidDimensions, len(data), width, height, width*height*4)
	}

	// The whole luminance plane is computed up front: diffusion must never
	// read a value that has not been initialized from the original image.
	lum := gray.FromRGBA(width, height, data)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			old := lum[i]

			// newPixel is 0 (black) below the threshold, 255 otherwise.
			// Strict less-than: a value exactly at the threshold is white.
			var alpha uint8
			var qerr float64
			if old < e.threshold {
				alpha = 255
				qerr = old // old - 0
			} else {
				alpha = 0
				qerr = old - 255
			}

			o := i * 4
			data[o+0] = 0
			data[o+1] = 0
			data[o+2] = 0
			data[o+3] = alpha

			// Diffuse before moving on, so pixels later in the scan see
			// the adjusted luminance.
			diffuse(lum, width, height, x, y, qerr)
		}
	}

	Logger().Debug("stencil: dither complete",
		"width", width, "height", height, "threshold", e.threshold)
	return nil
}

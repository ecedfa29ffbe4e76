// Package stencil converts images into two-level alpha stencils using
// Sierra error-diffusion dithering.
//
// # Overview
//
// stencil implements a single transform: given an interleaved RGBA pixel
// buffer, it produces a buffer of identical shape where every pixel is
// either opaque black or fully transparent. Visual density is preserved by
// diffusing the quantization error of each pixel into its not-yet-visited
// neighbors, so the output reads as a halftone mask of the input.
//
// # Quick Start
//
//	import "github.com/gogpu/stencil"
//
//	pm := stencil.FromImage(img)
//
//	eng := stencil.New()
//	if err := eng.Dither(pm); err != nil {
//	    log.Fatal(err)
//	}
//
//	// pm now holds the alpha stencil.
//	pm.SavePNG("stencil.png")
//
// # Pipeline
//
// Each call runs one linear pass over the buffer:
//   - Luminance: every pixel is reduced to a single perceptual brightness
//     value before any diffusion begins.
//   - Classification: brightness below the threshold becomes opaque black,
//     everything else becomes transparent. RGB channels are always zeroed;
//     only the alpha channel carries the result.
//   - Diffusion: the difference between the measured and the emitted value
//     is spread over ten forward neighbors using the three-row Sierra
//     kernel. Contributions that fall outside the buffer are dropped.
//
// The scan is strictly sequential in row-major order; later pixels depend
// on error written by earlier ones. Distinct buffers may be processed
// concurrently, see [Engine.DitherAll].
//
// # Determinism
//
// The transform is deterministic for a given input and threshold. Running
// it again on its own output is valid but is not guaranteed to reproduce
// the same stencil, since the output's luminance distribution differs from
// the original image's.
package stencil

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)

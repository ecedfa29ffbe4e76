// Package gray reduces interleaved RGBA pixel data to a per-pixel
// luminance plane for error-diffusion dithering.
package gray

// Perceptual luminance weights (ITU-R BT.601). The three weights sum to
// 1.0, so a gray input pixel maps to its own channel value.
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// Luminance returns the perceived brightness of one pixel on a 0-255
// scale. Alpha does not participate.
func Luminance(r, g, b uint8) float64 {
	return weightR*float64(r) + weightG*float64(g) + weightB*float64(b)
}

// FromRGBA flattens a row-major interleaved RGBA buffer into one float64
// luminance value per pixel, indexed identically to the source pixels.
// The caller guarantees len(data) == width*height*4.
func FromRGBA(width, height int, data []uint8) []float64 {
	lum := make([]float64, width*height)
	for i := range lum {
		o := i * 4
		lum[i] = Luminance(data[o+0], data[o+1], data[o+2])
	}
	return lum
}

package stencil

// tap is one target of the error-diffusion kernel: a pixel offset relative
// to the pixel being classified, and the fraction of its quantization error
// delivered there.
type tap struct {
	dx, dy int
	weight float64
}

// sierraKernel is the three-row Sierra diffusion kernel. All weights are
// multiples of 1/32 and sum to exactly 1.0, so a fully interior pixel hands
// its entire error to its forward neighbors. Targets are strictly forward
// in row-major order: same row to the right, plus the next two rows.
//
// The weights are empirically tuned constants; changing them changes the
// visual output.
var sierraKernel = [...]tap{
	{dx: 2, dy: 0, weight: 5.0 / 32},
	{dx: 3, dy: 0, weight: 3.0 / 32},
	{dx: -2, dy: 1, weight: 2.0 / 32},
	{dx: -1, dy: 1, weight: 4.0 / 32},
	{dx: 0, dy: 1, weight: 5.0 / 32},
	{dx: 1, dy: 1, weight: 4.0 / 32},
	{dx: 2, dy: 1, weight: 2.0 / 32},
	{dx: -1, dy: 2, weight: 2.0 / 32},
	{dx: 0, dy: 2, weight: 3.0 / 32},
	{dx: 1, dy: 2, weight: 2.0 / 32},
}

// diffuse spreads qerr from (x, y) into lum according to sierraKernel.
// Targets outside [0, width) x [0, height) are dropped: near the buffer
// edge some error is lost rather than redistributed or clamped.
func diffuse(lum []float64, width, height, x, y int, qerr float64) {
	for _, t := range sierraKernel {
		tx, ty := x+t.dx, y+t.dy
		if tx < 0 || tx >= width || ty < 0 || ty >= height {
			continue
		}
		lum[ty*width+tx] += qerr * t.weight
	}
}

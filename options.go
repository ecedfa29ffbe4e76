package stencil

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default threshold
//	eng := stencil.New()
//
//	// Lighter stencil: fewer pixels classify as black
//	eng := stencil.New(stencil.WithThreshold(40))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	threshold float64
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		threshold: DefaultThreshold,
	}
}

// WithThreshold sets the luminance threshold on a 0-255 scale. Pixels whose
// (diffusion-adjusted) luminance is below t become opaque black; everything
// else becomes transparent. Values outside [0, 255] are legal and simply
// force an all-transparent or all-black result.
func WithThreshold(t float64) Option {
	return func(o *engineOptions) {
		o.threshold = t
	}
}

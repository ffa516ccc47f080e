package dedupe

// Option applies a configuration option to the Detector.
type Option func(*Detector)

// WithWindowDays sets the largest date-of-birth gap between similar candidates.
// Negative values are ignored.
func WithWindowDays(days int) Option {
	return func(d *Detector) {
		if days >= 0 {
			d.windowDays = days
		}
	}
}

// WithNormalizer sets the name normalizer used to build keys.
func WithNormalizer(n *Normalizer) Option {
	return func(d *Detector) {
		if n != nil {
			d.normalizer = n
		}
	}
}

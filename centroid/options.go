package centroid

import (
	"github.com/YuminosukeSato/streamkern/pkg/log"
)

// Option configures a Centroid at construction time.
type Option func(*Centroid)

// WithTolerance sets the admission tolerance for the approximate linear
// dependence test. The default is 0.001.
func WithTolerance(tol float64) Option {
	return func(c *Centroid) {
		c.tol = tol
	}
}

// WithMaxDictionarySize caps the dictionary at n basis vectors. Once the
// cap is reached, otherwise-admissible samples are folded into the
// existing weights instead of growing the basis. A value of 0 (the
// default) means unbounded growth; bounding it changes results, so the
// cap is strictly opt-in.
func WithMaxDictionarySize(n int) Option {
	return func(c *Centroid) {
		c.maxSize = n
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger log.Logger) Option {
	return func(c *Centroid) {
		c.logger = logger
	}
}

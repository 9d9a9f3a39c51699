package enqueue

import "github.com/sirupsen/logrus"

type config struct {
	logger   logrus.FieldLogger
	capacity int
}

type Option func(c *config)

// WithLogger routes trace entries about the iterator switching from its
// source to its pending items, and resuming after running dry, to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCapacity presizes the pending buffer.  It is a hint only,
// the buffer still grows without bound.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// Package enqueue provides an iterator which items can be appended to
// at any time, even after it has reported that nothing is left.
//
// A QueueIter yields everything from the producer it wraps first and
// then every enqueued item in the order it was enqueued.  Unlike most
// iterators, a false result from Next only means nothing is available
// right now: enqueue more and Next yields again.  Generic helpers which
// stop on the first false and never call again will miss anything
// enqueued afterwards.
package enqueue

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/symonk/enqueue/internal/contract"
	"github.com/symonk/enqueue/internal/deque"
)

// QueueIter wraps a producer and a FIFO buffer of enqueued items.
// It is not safe for concurrent use.
type QueueIter[T any] struct {
	source  contract.Producer[T]
	pending contract.Container[T]
	logger  logrus.FieldLogger

	drained bool
	closed  bool
	idle    bool
}

// Ensure QueueIter implements Producer
var _ contract.Producer[int] = (*QueueIter[int])(nil)

// New instantiates a new QueueIter over source and applies the
// appropriate functional options to it.  A nil source is treated
// as one that never yields anything.
func New[T any](source contract.Producer[T], opts ...Option) *QueueIter[T] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}
	return &QueueIter[T]{
		source:  source,
		pending: deque.New[T](cfg.capacity),
		logger:  cfg.logger,
	}
}

// Enqueue appends item to the end of the iterator.  It will be
// produced after everything left in the source and everything
// enqueued before it.
func (q *QueueIter[T]) Enqueue(item T) {
	q.pending.PushBack(item)
}

// EnqueueAll enqueues each of items in order.
func (q *QueueIter[T]) EnqueueAll(items ...T) {
	for _, item := range items {
		q.pending.PushBack(item)
	}
}

// Next returns the next item of the source, or once the source
// reports nothing, the oldest enqueued item.  The boolean is false
// when neither has anything to give; a later Enqueue makes Next
// succeed again.
func (q *QueueIter[T]) Next() (T, bool) {
	if q.source != nil && !q.closed {
		if v, ok := q.source.Next(); ok {
			q.resume()
			return v, true
		}
		if !q.drained {
			q.drained = true
			q.logger.WithField("pending", q.pending.Len()).Trace("source exhausted, serving enqueued items")
		}
	}
	v, err := q.pending.PopFront()
	if err != nil {
		q.idle = true
		var zero T
		return zero, false
	}
	q.resume()
	return v, true
}

func (q *QueueIter[T]) resume() {
	if q.idle {
		q.idle = false
		q.logger.WithField("pending", q.pending.Len()).Trace("resumed after running dry")
	}
}

// Pending returns the number of enqueued items not yet produced.
func (q *QueueIter[T]) Pending() int {
	return q.pending.Len()
}

// All returns a sequence over whatever is available right now.  The
// sequence ends at the first point Next reports nothing, anything
// enqueued afterwards needs another call to All.
func (q *QueueIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Err returns the error of the wrapped source if it exposes one.
// The error is returned exactly as the source reports it.
func (q *QueueIter[T]) Err() error {
	if e, ok := q.source.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// Close releases the wrapped source when it is an io.Closer and stops
// it being polled.  Enqueue and Next keep working on the pending items.
func (q *QueueIter[T]) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	if c, ok := q.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

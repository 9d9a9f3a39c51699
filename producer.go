package enqueue

import "iter"

// ProducerFunc adapts a plain function into a producer, handy for
// generated or infinite sequences.
type ProducerFunc[T any] func() (T, bool)

func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// SliceProducer yields the values of a slice in order.
type SliceProducer[T any] struct {
	values []T
	index  int
}

func NewSliceProducer[T any](values []T) *SliceProducer[T] {
	return &SliceProducer[T]{values: values}
}

func (p *SliceProducer[T]) Next() (T, bool) {
	if p.index >= len(p.values) {
		var zero T
		return zero, false
	}
	v := p.values[p.index]
	p.index++
	return v, true
}

// SeqProducer pulls values out of an iter.Seq.  The pull is stopped
// once the sequence ends or Close is called.
type SeqProducer[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func NewSeqProducer[T any](seq iter.Seq[T]) *SeqProducer[T] {
	next, stop := iter.Pull(seq)
	return &SeqProducer[T]{next: next, stop: stop}
}

func (p *SeqProducer[T]) Next() (T, bool) {
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		_ = p.Close()
	}
	return v, ok
}

// Close stops the underlying pull, it is safe to call more than once.
func (p *SeqProducer[T]) Close() error {
	if !p.done {
		p.done = true
		p.stop()
	}
	return nil
}

// FromSlice returns a QueueIter over the values of s.
func FromSlice[T any](s []T, opts ...Option) *QueueIter[T] {
	return New[T](NewSliceProducer(s), opts...)
}

// Of returns a QueueIter over values.
func Of[T any](values ...T) *QueueIter[T] {
	return FromSlice(values)
}

// FromSeq returns a QueueIter pulling from seq.  Close the iterator
// if it is abandoned before seq is exhausted.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *QueueIter[T] {
	return New[T](NewSeqProducer(seq), opts...)
}

// FromFunc returns a QueueIter over the values fn produces.
func FromFunc[T any](fn func() (T, bool), opts ...Option) *QueueIter[T] {
	return New[T](ProducerFunc[T](fn), opts...)
}

// Empty returns a QueueIter which only yields what is enqueued.
func Empty[T any](opts ...Option) *QueueIter[T] {
	return New[T](nil, opts...)
}

// deque is a package that provides a basic implementation of a double ended queue.
package deque

import (
	"errors"
)

var (
	// ErrEmptyDeque is returned when the deque is empty.
	ErrEmptyDeque = errors.New("deque is empty")
)

const minCapacity = 8

// Deque is a double ended queue backed by a growable ring buffer
// with an unlimited max length.  It is not synchronised, callers
// that share one across goroutines must guard it themselves.
type Deque[T any] struct {
	buf  []T
	head int
	n    int
}

// New returns a new pointer to an instance of a Deque, capacity
// is a hint for the initial buffer size.
func New[T any](capacity int) *Deque[T] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

// PushBack puts a new item at the tail of the deque.
func (d *Deque[T]) PushBack(element T) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = element
	d.n++
}

// PushFront puts a new item at the head of the deque.
func (d *Deque[T]) PushFront(element T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = element
	d.n++
}

// PopFront removes and returns the head element of the deque.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.n == 0 {
		return zero, ErrEmptyDeque
	}
	item := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return item, nil
}

// PopBack removes and returns the tail element of the deque.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.n == 0 {
		return zero, ErrEmptyDeque
	}
	i := (d.head + d.n - 1) % len(d.buf)
	item := d.buf[i]
	d.buf[i] = zero
	d.n--
	return item, nil
}

// Len returns the length of the Deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// grow doubles the buffer when it is full, unwrapping the
// contents so the head sits at index zero again.
func (d *Deque[T]) grow() {
	if d.buf == nil {
		d.buf = make([]T, minCapacity)
	}
	if d.n < len(d.buf) {
		return
	}
	next := make([]T, len(d.buf)*2)
	copied := copy(next, d.buf[d.head:])
	copy(next[copied:], d.buf[:d.head])
	d.buf = next
	d.head = 0
}

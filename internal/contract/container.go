package contract

// Container is the interface for something which can be used as the storage
// middleware for the pending items of a QueueIter.  Items leave in the order
// they were pushed.
type Container[T any] interface {
	PushBack(element T)
	PopFront() (T, error)
	Len() int
}

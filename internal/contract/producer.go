package contract

// Producer is the interface for anything which yields a lazy sequence of
// values one at a time.  Next returns false when nothing is available,
// which is not necessarily permanent.
type Producer[T any] interface {
	Next() (T, bool)
}

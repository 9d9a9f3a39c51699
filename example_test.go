package enqueue_test

import (
	"fmt"

	"github.com/symonk/enqueue"
)

func ExampleQueueIter_Enqueue() {
	q := enqueue.Of(666)
	q.Enqueue(42)

	for v, ok := q.Next(); ok; v, ok = q.Next() {
		fmt.Println(v)
	}

	// Running dry is not the end, enqueue and carry on.
	q.Enqueue(7)
	v, ok := q.Next()
	fmt.Println(v, ok)
	// Output:
	// 666
	// 42
	// 7 true
}

func ExampleQueueIter_All() {
	q := enqueue.Of("a", "b")
	for s := range q.All() {
		if s == "a" {
			q.Enqueue("c")
		}
		fmt.Print(s)
	}
	fmt.Println()
	// Output: abc
}

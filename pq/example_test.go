package pq_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/pq"
)

// Update reprioritizes a queued value in place, so consumers never need
// to drain and re-add.
func ExampleMin() {
	q := pq.NewMin[string](4)
	q.Enqueue("walk", 3)
	q.Enqueue("run", 1)
	q.Enqueue("crawl", 3)
	q.Update("walk", 0)

	for q.Len() > 0 {
		v, p, _ := q.Dequeue()
		fmt.Println(v, p)
	}
	// Output:
	// walk 0
	// run 1
	// crawl 3
}

// Equal priorities resolve in insertion order.
func ExampleMin_fifo() {
	q := pq.NewMin[string](4)
	q.Enqueue("first", 7)
	q.Enqueue("second", 7)
	q.Enqueue("third", 7)

	for q.Len() > 0 {
		v, _, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// first
	// second
	// third
}

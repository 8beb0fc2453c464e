package sequencer

import (
	"github.com/jamesmunns/blinq/pattern"
)

// DefaultCapacity is the queue capacity used when none is given.
const DefaultCapacity = 8

// Queue is a fixed-capacity FIFO of patterns. The capacity is fixed the
// first time the queue is used and the backing array is never reallocated.
type Queue struct {
	Capacity int

	data  []pattern.Pattern
	head  int
	count int
}

func (q *Queue) init() {
	if q.data == nil {
		if q.Capacity <= 0 {
			q.Capacity = DefaultCapacity
		}
		q.data = make([]pattern.Pattern, q.Capacity)
	}
}

// Push appends a pattern at the tail. Returns ErrQueueFull when no room
// remains; the queue is unchanged in that case.
func (q *Queue) Push(p pattern.Pattern) (err error) {
	q.init()

	if q.count == q.Capacity {
		err = ErrQueueFull
		return
	}

	q.data[(q.head+q.count)%q.Capacity] = p
	q.count++

	return
}

// Pop removes and returns the pattern at the head.
func (q *Queue) Pop() (p pattern.Pattern, ok bool) {
	if q.count == 0 {
		return
	}

	p, ok = q.data[q.head], true
	q.head = (q.head + 1) % q.Capacity
	q.count--

	return
}

// Len returns the number of queued patterns.
func (q *Queue) Len() int {
	return q.count
}

func (q *Queue) Empty() bool {
	return q.count == 0
}

func (q *Queue) Full() bool {
	return q.data != nil && q.count == q.Capacity
}

// Reset drops all queued patterns, keeping the backing array.
func (q *Queue) Reset() {
	q.head = 0
	q.count = 0
}

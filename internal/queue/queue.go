// Package queue provides value-based work lists for graph traversal.
package queue

// FIFO is a growable ring-buffer queue of vertex ids.
// Optimized: value-based storage, no per-item allocation, power-of-two capacity
type FIFO struct {
	items []int
	head  int
	size  int
}

// NewFIFO creates a FIFO with room for at least capacity items.
func NewFIFO(capacity int) *FIFO {
	c := 16
	for c < capacity {
		c <<= 1
	}
	return &FIFO{items: make([]int, c)}
}

// Len returns the number of queued items.
func (q *FIFO) Len() int { return q.size }

// Push appends v to the back of the queue.
func (q *FIFO) Push(v int) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)&(len(q.items)-1)] = v
	q.size++
}

// Pop removes and returns the front item.
func (q *FIFO) Pop() (int, bool) {
	if q.size == 0 {
		return 0, false
	}
	v := q.items[q.head]
	q.head = (q.head + 1) & (len(q.items) - 1)
	q.size--
	return v, true
}

// Reset clears the queue for reuse.
func (q *FIFO) Reset() {
	q.head = 0
	q.size = 0
}

func (q *FIFO) grow() {
	newItems := make([]int, len(q.items)*2)
	// Unroll the ring so head starts at 0.
	n := copy(newItems, q.items[q.head:])
	copy(newItems[n:], q.items[:q.head])
	q.items = newItems
	q.head = 0
}

// Stack is a LIFO of vertex ids.
type Stack struct {
	items []int
}

// NewStack creates a Stack with the given initial capacity.
func NewStack(capacity int) *Stack {
	return &Stack{items: make([]int, 0, capacity)}
}

// Len returns the number of items on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Push puts v on top of the stack.
func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (int, bool) {
	n := len(s.items)
	if n == 0 {
		return 0, false
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

// Reset clears the stack for reuse.
// Optimized: just truncate slice (zero values not needed with value types)
func (s *Stack) Reset() {
	s.items = s.items[:0]
}

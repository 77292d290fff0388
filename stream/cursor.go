package stream

// Cursor walks a stream one index at a time.
type Cursor[T any] struct {
	stream Stream[T]
	index  int
}

// Next returns the element at the current index and advances.
func (c *Cursor[T]) Next() T {
	v := c.stream.rule(c.index)
	c.index++
	return v
}

// Index is the index Next will compute.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Reset moves the cursor back to index 0.
func (c *Cursor[T]) Reset() {
	c.index = 0
}

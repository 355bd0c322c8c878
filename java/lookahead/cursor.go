// Package lookahead provides a random access cursor over a materialized
// sequence with nested checkpoints, for backtracking recursive descent
// parsers.
//
// A parser that cannot decide locally between two productions opens a
// checkpoint, tries the first one and rewinds if it fails:
//
//	s := c.Enter()
//	defer s.Close()
//	if node, err := parseCast(c); err == nil {
//		return node, nil
//	}
//	s.Reset()
//	return parseParenthesized(c)
//
// [Attempt] wraps this pattern.
package lookahead

import (
	"errors"
	"fmt"
)

var (
	ErrEndOfSequence   = errors.New("end of sequence")
	ErrStartOfSequence = errors.New("start of sequence")
	ErrOutOfRange      = errors.New("lookahead out of range")
)

// OutOfRangeError reports a Look whose target index lies outside the
// sequence.
type OutOfRangeError struct {
	Pos    int
	Offset int
	Len    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: offset %d from position %d in sequence of %d", ErrOutOfRange, e.Offset, e.Pos, e.Len)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// Cursor walks a fixed sequence of items. Its position i counts the items
// consumed; Next returns item i.
type Cursor[T any] struct {
	items       []T
	pos         int
	checkpoints []int
}

func New[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Next returns the item at the current position and advances past it.
func (c *Cursor[T]) Next() (T, error) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, ErrEndOfSequence
	}
	item := c.items[c.pos]
	c.pos++
	return item, nil
}

// Previous steps back one item and returns it.
func (c *Cursor[T]) Previous() (T, error) {
	if c.pos == 0 {
		var zero T
		return zero, ErrStartOfSequence
	}
	c.pos--
	return c.items[c.pos], nil
}

// Look returns the item k positions ahead without moving. Look(0) is what
// Next would return and Look(-1) is the most recently consumed item.
func (c *Cursor[T]) Look(k int) (T, error) {
	i := c.pos + k
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, &OutOfRangeError{Pos: c.pos, Offset: k, Len: len(c.items)}
	}
	return c.items[i], nil
}

func (c *Cursor[T]) Pos() int       { return c.pos }
func (c *Cursor[T]) Len() int       { return len(c.items) }
func (c *Cursor[T]) Remaining() int { return len(c.items) - c.pos }
func (c *Cursor[T]) AtEnd() bool    { return c.pos >= len(c.items) }

// Depth returns the number of open checkpoints.
func (c *Cursor[T]) Depth() int { return len(c.checkpoints) }

// Enter records the current position on the checkpoint stack. The returned
// scope must be closed, normally with defer, in the reverse order of Enter
// calls.
func (c *Cursor[T]) Enter() *Scope[T] {
	c.checkpoints = append(c.checkpoints, c.pos)
	return &Scope[T]{c: c, depth: len(c.checkpoints) - 1, pos: c.pos}
}

// Scope is an open checkpoint.
type Scope[T any] struct {
	c      *Cursor[T]
	depth  int
	pos    int
	closed bool
}

// Pos returns the position recorded when the scope was entered.
func (s *Scope[T]) Pos() int { return s.pos }

// Reset moves the cursor back to the recorded position. It can be called
// any number of times and leaves the checkpoint in place.
func (s *Scope[T]) Reset() {
	s.c.pos = s.pos
}

// Consumed returns how many items were consumed since the scope was
// entered.
func (s *Scope[T]) Consumed() int {
	return s.c.pos - s.pos
}

// Close pops the checkpoint, and any inner checkpoint left open, without
// moving the cursor. Closing twice is a no-op.
func (s *Scope[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if len(s.c.checkpoints) > s.depth {
		s.c.checkpoints = s.c.checkpoints[:s.depth]
	}
}

// Attempt runs f inside a checkpoint. If f fails the cursor is rewound to
// where it was before the call.
func Attempt[T, R any](c *Cursor[T], f func() (R, error)) (R, error) {
	s := c.Enter()
	defer s.Close()
	r, err := f()
	if err != nil {
		s.Reset()
		var zero R
		return zero, err
	}
	return r, nil
}

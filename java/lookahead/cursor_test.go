package lookahead

import (
	"errors"
	"testing"
)

func mustNext(t *testing.T, c *Cursor[int]) int {
	t.Helper()
	v, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	return v
}

func mustLook(t *testing.T, c *Cursor[int], k int) int {
	t.Helper()
	v, err := c.Look(k)
	if err != nil {
		t.Fatalf("Look(%d) error = %v", k, err)
	}
	return v
}

func TestCursorSequencing(t *testing.T) {
	c := New([]int{1, 2, 3, 4, 5, 6})

	steps := []struct {
		name string
		got  func() int
		want int
	}{
		{"next", func() int { return mustNext(t, c) }, 1},
		{"next", func() int { return mustNext(t, c) }, 2},
		{"look(0)", func() int { return mustLook(t, c, 0) }, 3},
		{"look(-1)", func() int { return mustLook(t, c, -1) }, 2},
		{"next", func() int { return mustNext(t, c) }, 3},
		{"look(2)", func() int { return mustLook(t, c, 2) }, 6},
		{"next", func() int { return mustNext(t, c) }, 4},
		{"look(-2)", func() int { return mustLook(t, c, -2) }, 3},
		{"look(1)", func() int { return mustLook(t, c, 1) }, 6},
		{"next", func() int { return mustNext(t, c) }, 5},
	}
	for i, step := range steps {
		if got := step.got(); got != step.want {
			t.Fatalf("step %d %s = %d, want %d", i, step.name, got, step.want)
		}
	}
}

func TestCursorBounds(t *testing.T) {
	c := New([]int{1, 2})
	if _, err := c.Previous(); !errors.Is(err, ErrStartOfSequence) {
		t.Errorf("Previous() at start error = %v", err)
	}
	mustNext(t, c)
	mustNext(t, c)
	if _, err := c.Next(); !errors.Is(err, ErrEndOfSequence) {
		t.Errorf("Next() at end error = %v", err)
	}
	if !c.AtEnd() || c.Remaining() != 0 {
		t.Errorf("AtEnd() = %v, Remaining() = %d", c.AtEnd(), c.Remaining())
	}

	_, err := c.Look(0)
	var oerr *OutOfRangeError
	if !errors.As(err, &oerr) {
		t.Fatalf("Look(0) at end error = %v, want *OutOfRangeError", err)
	}
	if oerr.Pos != 2 || oerr.Offset != 0 || oerr.Len != 2 {
		t.Errorf("OutOfRangeError = %+v", oerr)
	}
	if _, err := c.Look(-3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Look(-3) error = %v", err)
	}

	v, err := c.Previous()
	if err != nil || v != 2 {
		t.Errorf("Previous() = %d, %v, want 2", v, err)
	}
	if c.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", c.Pos())
	}
}

func TestScopeReset(t *testing.T) {
	c := New([]int{1, 2, 3, 4, 5, 6})
	mustNext(t, c)

	outer := c.Enter()
	defer outer.Close()
	mustNext(t, c)
	mustNext(t, c)

	inner := c.Enter()
	mustNext(t, c)
	inner.Reset()
	if got := mustLook(t, c, 0); got != 4 {
		t.Errorf("after inner reset Look(0) = %d, want 4", got)
	}
	mustNext(t, c)
	inner.Reset()
	inner.Reset()
	inner.Close()

	if c.Depth() != 1 {
		t.Errorf("Depth() = %d after closing inner, want 1", c.Depth())
	}

	outer.Reset()
	if got := mustNext(t, c); got != 2 {
		t.Errorf("after outer reset Next() = %d, want 2", got)
	}
	if outer.Consumed() != 1 {
		t.Errorf("Consumed() = %d, want 1", outer.Consumed())
	}
}

func TestScopeCloseDoesNotMove(t *testing.T) {
	c := New([]int{1, 2, 3})
	s := c.Enter()
	mustNext(t, c)
	mustNext(t, c)
	s.Close()
	s.Close()
	if c.Pos() != 2 {
		t.Errorf("Pos() = %d after Close, want 2", c.Pos())
	}
	if c.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", c.Depth())
	}
}

func TestScopeClosePopsInner(t *testing.T) {
	c := New([]int{1, 2, 3})
	outer := c.Enter()
	c.Enter()
	c.Enter()
	if c.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", c.Depth())
	}
	outer.Close()
	if c.Depth() != 0 {
		t.Errorf("Depth() = %d after closing outer, want 0", c.Depth())
	}
}

var errNoMatch = errors.New("no match")

func TestAttempt(t *testing.T) {
	c := New([]int{1, 2, 3, 4})

	_, err := Attempt(c, func() (int, error) {
		mustNext(t, c)
		mustNext(t, c)
		return 0, errNoMatch
	})
	if !errors.Is(err, errNoMatch) {
		t.Fatalf("Attempt error = %v", err)
	}
	if c.Pos() != 0 {
		t.Errorf("failed Attempt left Pos() = %d, want 0", c.Pos())
	}

	sum, err := Attempt(c, func() (int, error) {
		a := mustNext(t, c)
		// A nested failed attempt must not disturb the outer one.
		if _, err := Attempt(c, func() (int, error) {
			mustNext(t, c)
			return 0, errNoMatch
		}); err == nil {
			t.Error("inner Attempt succeeded")
		}
		b := mustNext(t, c)
		return a + b, nil
	})
	if err != nil {
		t.Fatalf("Attempt error = %v", err)
	}
	if sum != 3 {
		t.Errorf("Attempt = %d, want 3", sum)
	}
	if c.Pos() != 2 || c.Depth() != 0 {
		t.Errorf("Pos() = %d, Depth() = %d, want 2, 0", c.Pos(), c.Depth())
	}
}

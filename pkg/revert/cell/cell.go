package cell

import (
	"github.com/ib-77/revert/pkg/revert"
)

// Cell exclusively owns a single value of type T and mediates construction
// of guards whose undo actions reference it. At most one guard derived from
// a cell may be unresolved at a time; the cell cannot be touched again until
// that guard is committed or abandoned. Cells are not safe for concurrent
// use; callers needing cross-goroutine access must wrap the whole cell in
// their own synchronization.
type Cell[T any] struct {
	value T
	busy  bool
}

// New wraps v in a cell, taking ownership of it.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Apply runs op against the contained value immediately and returns an armed
// guard holding op's result together with undo. Abandoning the guard invokes
// undo with exclusive access to the contained value and the result by value;
// committing discards undo and returns the result.
//
// undo must accept any result op can produce, including results that encode
// failure; it is undo's job to branch on the result and decide whether a
// reversal is needed. The guard must be resolved:
//
//	g := cell.Apply(c, op, undo)
//	defer g.Abandon()
//	// ... steps that may exit early ...
//	v, err := g.Commit()
//
// Apply panics if a guard derived from c is still unresolved, or if op or
// undo is nil.
func Apply[T, R any](c *Cell[T], op func(*T) R, undo func(*T, R)) *revert.Guard[R] {
	if op == nil {
		panic("cell: nil operation")
	}
	if undo == nil {
		panic("cell: nil undo action")
	}
	c.acquire()
	armed := false
	defer func() {
		if !armed {
			c.release()
		}
	}()

	r := op(&c.value)

	g := revert.NewBound(r, func(res R) {
		undo(&c.value, res)
	}, c.release)
	armed = true
	return g
}

// View is Apply for operations that only read: op receives the contained
// value by value. The undo action still gets exclusive access on
// abandonment, keeping call sites symmetrical with Apply.
func View[T, R any](c *Cell[T], op func(T) R, undo func(*T, R)) *revert.Guard[R] {
	if op == nil {
		panic("cell: nil operation")
	}
	if undo == nil {
		panic("cell: nil undo action")
	}
	c.acquire()
	armed := false
	defer func() {
		if !armed {
			c.release()
		}
	}()

	r := op(c.value)

	g := revert.NewBound(r, func(res R) {
		undo(&c.value, res)
	}, c.release)
	armed = true
	return g
}

// Do gives f direct exclusive access to the contained value, outside any
// guard. Panics while a guard derived from the cell is unresolved.
func (c *Cell[T]) Do(f func(*T)) {
	c.acquire()
	defer c.release()
	f(&c.value)
}

// Get returns a copy of the contained value. Panics while a guard derived
// from the cell is unresolved.
func (c *Cell[T]) Get() T {
	c.acquire()
	defer c.release()
	return c.value
}

func (c *Cell[T]) acquire() {
	if c.busy {
		panic("cell: a guard derived from this cell is still unresolved")
	}
	c.busy = true
}

func (c *Cell[T]) release() {
	c.busy = false
}

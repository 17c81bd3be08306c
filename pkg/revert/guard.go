package revert

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrResolved is returned by Commit when the guard has already been
// committed or abandoned.
var ErrResolved = errors.New("revert: guard already resolved")

// Guard pairs a pending result with a single-use undo action. While armed,
// the result can be inspected and mutated in place; resolution happens
// exactly once, either by Commit (result released, undo discarded) or by
// Abandon (undo invoked with the result).
//
// Go has no deterministic destructors, so every call site that obtains a
// guard is required to schedule abandonment before doing anything that can
// exit early:
//
//	g := cell.Apply(c, op, undo)
//	defer g.Abandon()
//	// ... steps that may return early ...
//	v, err := g.Commit()
//
// Abandon after a successful Commit is a no-op, which is what makes the
// deferred call safe on every exit path.
type Guard[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    R
	undo      func(R)
	release   func()
	armed     bool
}

// New returns an armed guard holding result. A nil undo means abandonment
// simply discards the result.
func New[R any](result R, undo func(R)) *Guard[R] {
	return &Guard[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    result,
		undo:      undo,
		armed:     true,
	}
}

// NewBound is New with a release hook that runs exactly once when the guard
// resolves, on the commit and the abandon path alike. Containers use it to
// regain exclusive access to their value once the derived guard is resolved.
func NewBound[R any](result R, undo func(R), release func()) *Guard[R] {
	g := New(result, undo)
	g.release = release
	return g
}

// Commit disarms the guard and returns the pending result; the undo action
// is discarded unused. Committing an already resolved guard returns
// ErrResolved.
func (g *Guard[R]) Commit() (R, error) {
	var zero R
	if !g.armed {
		return zero, ErrResolved
	}
	g.armed = false
	r := g.result
	g.result = zero
	g.undo = nil
	if rel := g.release; rel != nil {
		g.release = nil
		rel()
	}
	return r, nil
}

// MustCommit is Commit that panics on ErrResolved.
func (g *Guard[R]) MustCommit() R {
	r, err := g.Commit()
	if err != nil {
		panic(err)
	}
	return r
}

// Abandon disarms the guard and invokes the undo action with the pending
// result. On an already resolved guard it does nothing, so it can be
// deferred unconditionally. A panic raised by the undo action propagates to
// the caller; the release hook still runs.
func (g *Guard[R]) Abandon() {
	if !g.armed {
		return
	}
	g.armed = false
	r := g.result
	var zero R
	g.result = zero
	undo := g.undo
	g.undo = nil
	if rel := g.release; rel != nil {
		g.release = nil
		defer rel()
	}
	if undo != nil {
		undo(r)
	}
}

// Peek returns the pending result. Panics once the guard is resolved.
func (g *Guard[R]) Peek() R {
	if !g.armed {
		panic("revert: peek on resolved guard")
	}
	return g.result
}

// Mut returns a pointer to the pending result for in-place mutation before
// the commit decision. Panics once the guard is resolved; the pointer must
// not be retained past resolution.
func (g *Guard[R]) Mut() *R {
	if !g.armed {
		panic("revert: mutate on resolved guard")
	}
	return &g.result
}

// Armed reports whether the guard still holds its result and undo action.
func (g *Guard[R]) Armed() bool {
	return g.armed
}

// Resolved reports whether the guard has been committed or abandoned.
func (g *Guard[R]) Resolved() bool {
	return !g.armed
}

func (g *Guard[R]) Id() uuid.UUID {
	return g.id
}

// CreatedAt time creation (UTC)
func (g *Guard[R]) CreatedAt() time.Time {
	return g.createdAt
}

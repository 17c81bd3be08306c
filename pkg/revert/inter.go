package revert

import (
	"time"

	"github.com/google/uuid"
)

// Resolver is the result-type-independent view of a guard, for call sites
// that need to abandon guards of mixed types.
type Resolver interface {
	// Abandon runs the undo action if the guard is still armed
	Abandon()
	// Resolved reports whether the guard has been committed or abandoned
	Resolved() bool
}

// Identified exposes the identity metadata every guard carries
type Identified interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ Resolver   = (*Guard[any])(nil)
	_ Identified = (*Guard[any])(nil)
)

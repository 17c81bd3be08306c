package stage

import (
	clone "github.com/huandu/go-clone/generic"

	"github.com/ib-77/revert/pkg/revert"
)

// Value arms a detached guard around v with a no-op undo action. The caller
// builds up the staged value through Mut, then either commits to retrieve it
// (writing it to its destination themselves) or abandons the guard, in which
// case the value is discarded and no external state is touched.
func Value[T any](v T) *revert.Guard[T] {
	return revert.New[T](v, nil)
}

// Cloned is Value over a deep clone of v, for staging a replacement of a
// live field without aliasing it: mutations of the staged value never reach
// the original.
func Cloned[T any](v T) *revert.Guard[T] {
	return Value(clone.Clone(v))
}

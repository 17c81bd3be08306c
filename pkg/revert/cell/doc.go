// Package cell provides the protected container: an exclusive owner of a
// single value whose mutations are performed through guarded operations.
//
// Key constructs:
// - New: wrap a value, taking ownership
// - Apply: run a mutating operation, receiving a guard armed with its undo
// - View: the read-only variant, for symmetry at call sites
// - Do/Get: direct exclusive access when no guard is outstanding
//
// A committed guard leaves the operation's effect in place; an abandoned one
// runs the supplied undo against the contained value, so a sequence that
// exits early leaves the value observably unchanged provided the undo is a
// correct inverse.
package cell

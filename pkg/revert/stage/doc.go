// Package stage provides detached staging guards for the pattern "build a
// replacement value off to the side, only adopt it if later steps succeed".
//
// Key constructs:
// - Value: stage a plain value under a no-op undo
// - Cloned: stage a deep clone, isolating the staged value from its source
//
// Since staging touches no external state, abandonment has no side effect;
// commit hands the final value back and placement stays with the caller.
package stage

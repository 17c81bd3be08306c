// Package revert provides the pending-result guard: a wrapper pairing a
// not-yet-finalized value with a single-use undo action, resolved exactly
// once by an explicit Commit or by an Abandon on any early-exit path.
//
// Common usage:
// - New/NewBound: arm a guard around a result and its undo action
// - Commit/MustCommit: accept the result, discarding the undo action
// - Abandon: run the undo action; deferred at every guard-producing call site
// - Peek/Mut: inspect or build up the pending result before deciding its fate
//
// Container-bound guards are produced by package cell; detached staging
// guards by package stage.
package revert

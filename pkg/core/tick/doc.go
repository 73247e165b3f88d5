// Package tick generates the tick marks for a scale definition.
//
// Two interchangeable strategies are supported behind a single selection
// parameter:
//
//   - [AlgorithmLegacy] walks each subsection per hierarchy level, stepping
//     by the level's interval and filtering finer ticks that coincide with a
//     coarser one via a tolerance check. Floating-point stepping can drift,
//     so the legacy strategy admits near-duplicate ticks.
//
//   - [AlgorithmModulo] scales every candidate position to an integer grid
//     with a precision multiplier, then classifies each grid position by the
//     coarsest interval that divides it evenly. Each position belongs to
//     exactly one hierarchy level, which eliminates the duplicate class of
//     bug structurally.
//
// The two strategies intentionally produce different tick counts for the
// same input; both remain independently selectable and independently correct
// relative to their own contract. The active strategy is an explicit field
// of [Options] on every call, never process-wide state, so concurrent
// generation of unrelated scales is deterministic.
package tick

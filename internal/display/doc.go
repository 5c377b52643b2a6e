// Package display implements the task-to-calendar projection and
// recurrence-forecast engine.
//
// The engine is two pure components composed per task:
//
// Projector:
// Project maps one task's temporal and status fields to a single
// display interval plus derived flags (started, completed, overdue).
// It is a leaf: no I/O, no globals, no dependencies beyond the task
// record and an explicit "now".
//
// Forecaster:
// Forecast takes a projected event and a recurrence interval and emits
// the original occurrence plus bounded future occurrences. Termination
// is duration-bounded: generation stops once a candidate occurrence
// starts after the original event's own end boundary, with a hard
// safety cap of 100 occurrences.
//
// DETERMINISM:
//
// Every function here is side-effect-free and stateless across calls.
// The only clock dependency is the explicit "now" parameter used by the
// overdue check; tests freeze it via FixedClock. Given equal inputs the
// engine always produces structurally equal outputs, so callers may
// fan out over a task collection concurrently with zero coordination.
//
// The engine never validates and never returns errors. Malformed input
// (zero timestamps, unknown statuses) flows through the date arithmetic
// unchanged; rejecting it is the task supplier's job.
package display

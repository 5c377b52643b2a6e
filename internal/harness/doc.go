// Package harness provides a scenario-based conformance harness for the
// display engine.
//
// A scenario is a YAML file holding a frozen "now", a task list, and
// assertions over the resulting schedule. Run executes the engine
// (Project then Forecast per task) under the frozen clock and evaluates
// the assertions; RunWithGolden additionally snapshots the schedule as
// JSON and compares it against a golden file under testdata/golden.
//
// Because the engine is pure and the clock is frozen, a scenario always
// produces byte-identical snapshots, so drift in golden comparisons can
// only come from a behavior change in the engine itself.
package harness

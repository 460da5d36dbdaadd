// Package assess runs the full assessment pipeline: validity gate,
// stress-intensity evaluation, Paris-law growth integration, and the
// status decision table that merges fracture and fatigue criteria into
// one terminal status. The single entry point is [Evaluator.Evaluate].
package assess

// Package diagnostic records what happened while a ruleset was evaluated:
// which fields were pruned, which rules had an unknown shape or operator tag,
// and which select paths did not resolve.
//
// Evaluation never fails, so diagnostics are the only way to see why a field
// is missing from the target. Recording them never changes the target.
package diagnostic

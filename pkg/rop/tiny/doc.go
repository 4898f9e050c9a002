// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of rop.Outcome[T] values that keep one value type.
//
// Unlike package chain it never rewrites a failure: a failed Chain is
// returned untouched, so its code survives every later step.
// - Start/FromValue: create a Chain
// - Then/ThenTry/Map/Filter: compose steps
// - RepeatUntil/While: loop a step over the value
// - Or/And: pick among several chains
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
package tiny

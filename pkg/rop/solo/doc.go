// Package solo contains the synchronous combinators over rop.Outcome[T].
// They are free functions because most of them change the value type.
//
// Highlights:
// - Map/Try: transform a successful value (Try adapts (value, error) calls)
// - Next/NextOr/NextOrGet: continue with a function returning an Outcome
// - NextIf/NextIfGet/NextIfElse: continue on a boolean condition
// - NextOptional: continue with a function returning a rop.Option
// - Choose/ChooseOrdered: first matching branch wins
// - Assertion and Assert*: lift a condition or an Option into an Outcome
// - Tee/Finally: side effects and reduction to a plain value
//
// A failure passing through any of these keeps its hint but not its code:
// the propagated failure has rop.CodeDefault.
package solo

// Package chain provides a fluent wrapper around rop.Outcome[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// A Chain carries a context and a trace id. Steps that turn a success into
// a failure are logged at debug level to zerolog.Ctx(ctx). Behaviour is tuned
// with options stored in the context:
// - WithCodePolicy: keep (PreserveCode) or reset (ResetCode, default) the
//   code of a failure skipped by later steps
// - WithTrace: switch step logging off
//
// Key operations:
// - Start/FromValue: begin a chain from a rop.Outcome[T] or value
// - Then/Try/Map/Choose: move to a new value type
// - Filter/Ensure/OrElse/OrElseGet: same-type steps
// - Finally/Raise: leave the chain as a plain value or (value, error)
package chain

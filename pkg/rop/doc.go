// Package rop defines Outcome[T], the success-or-failure value that the
// solo, chain and tiny packages compose into railway-oriented pipelines.
//
// A failure carries an integer code (CodeDefault unless given) and a
// human-readable hint. Success with no payload is Outcome[Unit].
// OrElseRaise is the only way out into Go errors; the error it builds by
// default is a *FailureError.
package rop

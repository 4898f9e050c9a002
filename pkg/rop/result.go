package rop

import "fmt"

const (
	// CodeSuccess marks a successful outcome. It is never set on a failure.
	CodeSuccess = 200
	// CodeDefault is the code of failures built without an explicit code.
	CodeDefault = 500
)

type status uint8

const (
	statusFailure status = iota
	statusSuccess
)

// Unit is the payload of a success that carries no data.
type Unit struct{}

// NoData is the single Unit value.
var NoData = Unit{}

// Outcome holds either a successful value or a failure code with a hint.
// It is immutable; every combinator returns a new Outcome. The zero Outcome
// is a failure with an empty hint and code CodeDefault.
type Outcome[T any] struct {
	status status
	value  T
	code   int
	hint   string
}

func Succeed() Outcome[Unit] {
	return Success(NoData)
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		status: statusSuccess,
		value:  v,
		code:   CodeSuccess,
	}
}

func Fail[T any](hint string) Outcome[T] {
	return FailCode[T](CodeDefault, hint)
}

func FailCode[T any](code int, hint string) Outcome[T] {
	return Outcome[T]{
		status: statusFailure,
		code:   code,
		hint:   hint,
	}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.status == statusSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return o.status != statusSuccess
}

// Value returns the success value, or the zero T for a failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Code returns CodeSuccess for a success and the failure code otherwise.
// A failure without a code reports CodeDefault.
func (o Outcome[T]) Code() int {
	if o.IsFailure() && o.code == 0 {
		return CodeDefault
	}
	return o.code
}

// Hint returns the failure hint; it is empty for a success.
func (o Outcome[T]) Hint() string {
	return o.hint
}

// OrElse returns o when it succeeded and alternative otherwise.
func (o Outcome[T]) OrElse(alternative Outcome[T]) Outcome[T] {
	if o.IsSuccess() {
		return o
	}
	return alternative
}

// OrElseGet is OrElse with a lazily computed alternative.
// The supplier is not called when o succeeded.
func (o Outcome[T]) OrElseGet(supplier func() Outcome[T]) Outcome[T] {
	if o.IsSuccess() {
		return o
	}
	return supplier()
}

// OrElseRaise leaves the Outcome world: it returns the value of a success,
// or the error built by errorFactory for a failure. A failure always yields
// a non-nil error: a nil errorFactory, or one returning nil, falls back to
// AsError.
func (o Outcome[T]) OrElseRaise(errorFactory func(Outcome[T]) error) (T, error) {
	if o.IsSuccess() {
		return o.value, nil
	}
	var err error
	if errorFactory != nil {
		err = errorFactory(o)
	}
	if err == nil {
		err = AsError(o)
	}
	var zero T
	return zero, err
}

// Filter keeps a success whose value satisfies predicate and turns any other
// success into Fail(hintOnFail). A failure is carried forward by its hint
// with the default code.
func (o Outcome[T]) Filter(predicate func(T) bool, hintOnFail string) Outcome[T] {
	if o.IsFailure() {
		return Fail[T](o.hint)
	}
	if predicate(o.value) {
		return Success(o.value)
	}
	return Fail[T](hintOnFail)
}

// Err returns nil for a success and AsError(o) for a failure.
func (o Outcome[T]) Err() error {
	if o.IsSuccess() {
		return nil
	}
	return AsError(o)
}

// String renders code=<c>,errorHint=<h>,data=<v>. The side that does not
// apply prints as null.
func (o Outcome[T]) String() string {
	if o.IsSuccess() {
		return fmt.Sprintf("code=%d,errorHint=null,data=%v", o.code, o.value)
	}
	return fmt.Sprintf("code=%d,errorHint=%s,data=null", o.Code(), o.hint)
}

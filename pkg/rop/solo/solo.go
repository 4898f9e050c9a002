package solo

import (
	"errors"

	"github.com/ib-77/outcome/pkg/rop"
)

// carry moves a failure to a new value type. Only the hint survives; the
// code falls back to rop.CodeDefault.
func carry[In, Out any](input rop.Outcome[In]) rop.Outcome[Out] {
	return rop.Fail[Out](input.Hint())
}

func Map[In, Out any](input rop.Outcome[In], onSuccess func(r In) Out) rop.Outcome[Out] {
	if input.IsFailure() {
		return carry[In, Out](input)
	}
	return rop.Success(onSuccess(input.Value()))
}

// Next is the bind of the railway: the Outcome produced by onSuccess,
// success or failure, becomes the result.
func Next[In, Out any](input rop.Outcome[In], onSuccess func(r In) rop.Outcome[Out]) rop.Outcome[Out] {
	if input.IsFailure() {
		return carry[In, Out](input)
	}
	return onSuccess(input.Value())
}

// NextOr is Next with a fallback: when onSuccess fails, its failure is
// dropped and Success(defaultValue) is returned instead.
func NextOr[In, Out any](input rop.Outcome[In], onSuccess func(r In) rop.Outcome[Out],
	defaultValue Out) rop.Outcome[Out] {
	return NextOrGet(input, onSuccess, rop.Val(defaultValue))
}

func NextOrGet[In, Out any](input rop.Outcome[In], onSuccess func(r In) rop.Outcome[Out],
	defaultValue func() Out) rop.Outcome[Out] {

	if input.IsFailure() {
		return carry[In, Out](input)
	}

	if next := onSuccess(input.Value()); next.IsSuccess() {
		return next
	}
	return rop.Success(defaultValue())
}

// NextIf continues with branch when condition holds and fails with
// hintOnElse otherwise.
func NextIf[In, Out any](input rop.Outcome[In], condition bool, branch rop.Outcome[Out],
	hintOnElse string) rop.Outcome[Out] {
	return NextIfGet(input, condition, rop.Just(branch), hintOnElse)
}

func NextIfGet[In, Out any](input rop.Outcome[In], condition bool, branch func() rop.Outcome[Out],
	hintOnElse string) rop.Outcome[Out] {

	if input.IsFailure() {
		return carry[In, Out](input)
	}
	if condition {
		return branch()
	}
	return rop.Fail[Out](hintOnElse)
}

// NextIfElse picks whenTrue or whenFalse by condition. Only the chosen
// supplier is called; wrap precomputed outcomes with rop.Just.
// For an Option condition pass opt.IsPresent().
func NextIfElse[In, Out any](input rop.Outcome[In], condition bool,
	whenTrue, whenFalse func() rop.Outcome[Out]) rop.Outcome[Out] {

	if input.IsFailure() {
		return carry[In, Out](input)
	}
	if condition {
		return whenTrue()
	}
	return whenFalse()
}

func NextIfElseValue[In, Out any](input rop.Outcome[In], condition bool,
	whenTrue, whenFalse rop.Outcome[Out]) rop.Outcome[Out] {
	return NextIfElse(input, condition, rop.Just(whenTrue), rop.Just(whenFalse))
}

// NextOptional lifts the Option produced by onSuccess: present becomes a
// success, absent becomes Fail(hintOnAbsent).
func NextOptional[In, Out any](input rop.Outcome[In], onSuccess func(r In) rop.Option[Out],
	hintOnAbsent string) rop.Outcome[Out] {
	return NextOptionalGet(input, onSuccess, rop.Text(hintOnAbsent))
}

func NextOptionalGet[In, Out any](input rop.Outcome[In], onSuccess func(r In) rop.Option[Out],
	hintOnAbsent func() string) rop.Outcome[Out] {

	if input.IsFailure() {
		return carry[In, Out](input)
	}
	return AssertOptionGet(onSuccess(input.Value()), hintOnAbsent)
}

// Try calls a (value, error) function on the success value. A returned
// *rop.FailureError keeps its code and hint; any other error becomes a
// failure with the error text as hint.
func Try[In, Out any](input rop.Outcome[In], onTryExecute func(r In) (Out, error)) rop.Outcome[Out] {
	if input.IsFailure() {
		return carry[In, Out](input)
	}

	out, err := onTryExecute(input.Value())
	if err != nil {
		var fe *rop.FailureError
		if errors.As(err, &fe) {
			return rop.FailCode[Out](fe.Code, fe.Hint)
		}
		return rop.Fail[Out](err.Error())
	}
	return rop.Success(out)
}

func Tee[T any](input rop.Outcome[T], onSuccess func(r T)) rop.Outcome[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

func Finally[In, Out any](input rop.Outcome[In],
	onSuccess func(r In) Out,
	onFailure func(code int, hint string) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Code(), input.Hint())
}

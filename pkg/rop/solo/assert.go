package solo

import "github.com/ib-77/outcome/pkg/rop"

// Assertion lifts a condition into an Outcome: Success(data()) when ok,
// FailCode(code, hint()) otherwise. Each supplier runs only on its own side.
// The Assert* helpers below cover the eager and lazy forms.
func Assertion[T any](ok bool, data func() T, hint func() string, code int) rop.Outcome[T] {
	if ok {
		return rop.Success(data())
	}
	return rop.FailCode[T](code, hint())
}

func Assert[T any](ok bool, data T, hint string) rop.Outcome[T] {
	return Assertion(ok, rop.Val(data), rop.Text(hint), rop.CodeDefault)
}

func AssertCode[T any](ok bool, data T, code int, hint string) rop.Outcome[T] {
	return Assertion(ok, rop.Val(data), rop.Text(hint), code)
}

func AssertGet[T any](ok bool, data func() T, hint string) rop.Outcome[T] {
	return Assertion(ok, data, rop.Text(hint), rop.CodeDefault)
}

func AssertGetCode[T any](ok bool, data func() T, code int, hint string) rop.Outcome[T] {
	return Assertion(ok, data, rop.Text(hint), code)
}

func AssertOption[T any](opt rop.Option[T], hint string) rop.Outcome[T] {
	return AssertOptionGetCode(opt, rop.CodeDefault, rop.Text(hint))
}

func AssertOptionCode[T any](opt rop.Option[T], code int, hint string) rop.Outcome[T] {
	return AssertOptionGetCode(opt, code, rop.Text(hint))
}

func AssertOptionGet[T any](opt rop.Option[T], hint func() string) rop.Outcome[T] {
	return AssertOptionGetCode(opt, rop.CodeDefault, hint)
}

func AssertOptionGetCode[T any](opt rop.Option[T], code int, hint func() string) rop.Outcome[T] {
	value, ok := opt.Get()
	return Assertion(ok, rop.Val(value), hint, code)
}

package tiny

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Outcome[T]
}

func Start[T any](ctx context.Context, r rop.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

func (c Chain[T]) Result() rop.Outcome[T] {
	return c.res
}

// Then composes functions that already return rop.Outcome[T].
// A failed chain is returned as is, code included.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Outcome[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// RepeatUntil runs onSuccess at least once and keeps going while until
// holds for the new value.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Outcome[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Outcome[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain among c and alternatives, or the
// first failure when none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (T, error) like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.res, func(v T) (T, error) {
		return try(c.ctx, v)
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: rop.Success(onSuccess(c.ctx, c.res.Value()))}
}

func (c Chain[T]) Filter(predicate func(ctx context.Context, t T) bool, hintOnFail string) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: c.res.Filter(func(v T) bool {
		return predicate(c.ctx, v)
	}, hintOnFail)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(ctx context.Context, code int, hint string)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Code(), c.res.Hint())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(ctx context.Context, code int, hint string) T,
) T {
	return solo.Finally(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(code int, hint string) T { return onFailure(c.ctx, code, hint) })
}

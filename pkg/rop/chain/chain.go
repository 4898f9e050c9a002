package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
	"github.com/rs/zerolog"
)

// Chain wraps a rop.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	id     uuid.UUID
	result rop.Outcome[T]
}

// Start creates a new chain from a rop.Outcome
func Start[T any](ctx context.Context, result rop.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		id:     uuid.New(),
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Outcome
func (c *Chain[T]) Result() rop.Outcome[T] {
	return c.result
}

// ID identifies the chain in trace logs. Steps keep the id of the chain
// they were started from.
func (c *Chain[T]) ID() uuid.UUID {
	return c.id
}

// Then chains a function that returns rop.Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Outcome[U]) *Chain[U] {
	return step(c, "then", solo.Next(c.result, func(v T) rop.Outcome[U] {
		return onSuccess(c.ctx, v)
	}))
}

// Try chains a function that returns (U, error)
func Try[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return step(c, "try", solo.Try(c.result, func(v T) (U, error) {
		return tryOnSuccess(c.ctx, v)
	}))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return step(c, "map", solo.Map(c.result, func(v T) U {
		return onSuccess(c.ctx, v)
	}))
}

// Choose continues with the first matching branch
func Choose[T, U any](c *Chain[T], defaultHint string, branches ...solo.Branch[T, U]) *Chain[U] {
	return step(c, "choose", solo.Choose(c.result, defaultHint, branches...))
}

// Filter fails the chain with hintOnFail when predicate rejects the value
func (c *Chain[T]) Filter(predicate func(context.Context, T) bool, hintOnFail string) *Chain[T] {
	return step(c, "filter", c.result.Filter(func(v T) bool {
		return predicate(c.ctx, v)
	}, hintOnFail))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		id:  c.id,
		result: solo.Tee(c.result, func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// OrElse replaces a failed result with alternative
func (c *Chain[T]) OrElse(alternative rop.Outcome[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, id: c.id, result: c.result.OrElse(alternative)}
}

// OrElseGet replaces a failed result with the outcome of supplier
func (c *Chain[T]) OrElseGet(supplier func(context.Context) rop.Outcome[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, id: c.id, result: c.result.OrElseGet(func() rop.Outcome[T] {
		return supplier(c.ctx)
	})}
}

// Raise returns the value, or the failure as an error built by rop.AsError
func (c *Chain[T]) Raise() (T, error) {
	return c.result.OrElseRaise(rop.AsError[T])
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(ctx context.Context, code int, hint string) U) U {
	return solo.Finally(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(code int, hint string) U { return onFailure(c.ctx, code, hint) })
}

func step[T, U any](c *Chain[T], name string, out rop.Outcome[U]) *Chain[U] {
	if c.result.IsFailure() {
		if GetCodePolicy(c.ctx, ResetCode) == PreserveCode {
			out = rop.FailCode[U](c.result.Code(), c.result.Hint())
		}
	} else if out.IsFailure() {
		trace(c.ctx, c.id, name, out)
	}
	return &Chain[U]{ctx: c.ctx, id: c.id, result: out}
}

func trace(ctx context.Context, id uuid.UUID, name string, s rop.Status) {
	if !IsTraceEnabled(ctx, true) {
		return
	}
	zerolog.Ctx(ctx).Debug().
		Str("chain_id", id.String()).
		Str("step", name).
		Int("code", s.Code()).
		Str("hint", s.Hint()).
		Msg("chain step failed")
}

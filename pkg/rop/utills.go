package rop

// Just wraps an already computed Outcome as a supplier, so eager and lazy
// branches can be passed to the same combinator.
func Just[T any](o Outcome[T]) func() Outcome[T] {
	return func() Outcome[T] { return o }
}

// Val wraps an already computed value as a supplier.
func Val[T any](v T) func() T {
	return func() T { return v }
}

// Text wraps a fixed hint as a supplier.
func Text(hint string) func() string {
	return func() string { return hint }
}

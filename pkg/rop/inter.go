package rop

// Status is the classification side of an Outcome, independent of its
// value type.
type Status interface {
	// IsSuccess returns true if the operation produced a value
	IsSuccess() bool
	// Code returns CodeSuccess or the failure code
	Code() int
	// Hint returns the failure description
	Hint() string
}

// ValueProvider exposes the success value.
type ValueProvider[T any] interface {
	Status
	// Value returns the success value
	Value() T
}

var _ ValueProvider[Unit] = Outcome[Unit]{}

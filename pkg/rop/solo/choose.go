package solo

import (
	"github.com/ib-77/outcome/pkg/rop"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Branch pairs a predicate on the current value with the Outcome to
// continue with when it matches.
type Branch[In, Out any] struct {
	When func(r In) bool
	Then func() rop.Outcome[Out]
}

func When[In, Out any](when func(r In) bool, then func() rop.Outcome[Out]) Branch[In, Out] {
	return Branch[In, Out]{When: when, Then: then}
}

// Choose evaluates branches in order and continues with the first one whose
// predicate matches. Later predicates and suppliers are not called. With no
// match the result is Fail(defaultHint).
func Choose[In, Out any](input rop.Outcome[In], defaultHint string,
	branches ...Branch[In, Out]) rop.Outcome[Out] {

	if input.IsFailure() {
		return carry[In, Out](input)
	}

	value := input.Value()
	for _, b := range branches {
		if b.When(value) {
			return b.Then()
		}
	}
	return rop.Fail[Out](defaultHint)
}

// ChooseOrdered is Choose over labelled branches. The map keeps insertion
// order, which is the order the branches are tried in.
func ChooseOrdered[In, Out any](input rop.Outcome[In], defaultHint string,
	branches *orderedmap.OrderedMap[string, Branch[In, Out]]) rop.Outcome[Out] {

	if input.IsFailure() {
		return carry[In, Out](input)
	}
	if branches == nil {
		return rop.Fail[Out](defaultHint)
	}

	value := input.Value()
	for pair := branches.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.When(value) {
			return pair.Value.Then()
		}
	}
	return rop.Fail[Out](defaultHint)
}

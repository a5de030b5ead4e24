// Package guard composes authorization checks as an explicit ordered list of
// predicates evaluated before an operation body. Each predicate either passes
// or fails with a typed reason; evaluation stops at the first failure.
package guard

import "context"

// Guard is one predicate in a chain. A nil return means pass; a non-nil
// error is the typed refusal reason surfaced to the caller.
type Guard func(ctx context.Context) error

// Chain evaluates guards in order and returns the first failure, or nil when
// every guard passes.
func Chain(ctx context.Context, guards ...Guard) error {
	for _, g := range guards {
		if g == nil {
			continue
		}
		if err := g(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Static wraps a precomputed result as a guard.
func Static(err error) Guard {
	return func(context.Context) error {
		return err
	}
}

// When returns g when cond holds, otherwise a pass-through guard. Used to
// skip entitlement checks for operators.
func When(cond bool, g Guard) Guard {
	if !cond {
		return nil
	}
	return g
}

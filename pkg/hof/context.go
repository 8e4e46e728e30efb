package hof

import (
	"errors"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

// Names bound inside fold-style evaluations. The base evaluator supports a
// single implicit subject, so the two logical bindings are wrapped into one
// synthetic object; these field names are part of the expression-authoring
// contract for reduce/scan.
const (
	bindAccumulator = "accumulator"
	bindCurrent     = "current"
	bindIndex       = "index"
)

// evalContext is the per-invocation binding environment. It is created once
// per combinator call, not once per element, and is never shared across
// concurrent invocations. The current slot is rebound per element; the
// accumulator slot is threaded by fold-style combinators only.
type evalContext struct {
	compiled    engine.Compiled
	current     value.Value
	accumulator value.Value
	index       int
}

// bind rebinds the current-element slot.
func (c *evalContext) bind(i int, elem value.Value) {
	c.index = i
	c.current = elem
}

// eval runs the expression with the current element as the implicit subject.
// Failures carry the element index.
func (c *evalContext) eval() (value.Value, error) {
	out, err := c.compiled.Evaluate(c.current)
	if err != nil {
		return nil, withIndex(err, c.index)
	}
	return out, nil
}

// evalFold runs the expression against the synthetic
// {accumulator, current, index} subject used by reduce and scan.
func (c *evalContext) evalFold() (value.Value, error) {
	subject := value.NewObject()
	subject.Set(bindAccumulator, c.accumulator)
	subject.Set(bindCurrent, c.current)
	subject.Set(bindIndex, float64(c.index))
	out, err := c.compiled.Evaluate(subject)
	if err != nil {
		return nil, withIndex(err, c.index)
	}
	return out, nil
}

func withIndex(err error, i int) error {
	var ee *engine.Error
	if errors.As(err, &ee) {
		return ee.WithIndex(i)
	}
	return err
}

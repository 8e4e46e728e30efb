// Package engine defines the boundary to the embedded base query evaluator
// and adapts github.com/jmespath/go-jmespath to it.
//
// The combinator library never touches the evaluator's AST or internals;
// it sees only an opaque compile step and a pure evaluate step, so the
// base engine can be swapped by providing another Engine implementation.
package engine

import "github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"

// Compiled is an immutable compiled expression.
// It owns no reference to any particular input and is safe to evaluate
// repeatedly and concurrently against different subjects.
type Compiled interface {
	// Evaluate runs the expression with subject as the implicit current value.
	Evaluate(subject value.Value) (value.Value, error)
}

// Engine compiles expression text in the embedded query grammar.
type Engine interface {
	// Compile parses text into a reusable Compiled handle, or returns a
	// *Error with code ErrCompile carrying the text and, when available,
	// the character offset of the syntax error.
	Compile(text string) (Compiled, error)
}

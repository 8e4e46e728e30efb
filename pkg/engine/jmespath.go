package engine

import (
	"errors"

	"github.com/jmespath/go-jmespath"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

// Default returns the Engine backed by github.com/jmespath/go-jmespath.
func Default() Engine {
	return jmespathEngine{}
}

type jmespathEngine struct{}

func (jmespathEngine) Compile(text string) (Compiled, error) {
	jp, err := jmespath.Compile(text)
	if err != nil {
		cerr := NewError(ErrCompile, err.Error()).WithExpr(text).WithCause(err)
		var syn jmespath.SyntaxError
		if errors.As(err, &syn) {
			cerr = cerr.WithPosition(syn.Offset)
		}
		return nil, cerr
	}
	return &jmespathCompiled{text: text, jp: jp}, nil
}

type jmespathCompiled struct {
	text string
	jp   *jmespath.JMESPath
}

func (c *jmespathCompiled) Evaluate(subject value.Value) (value.Value, error) {
	out, err := c.jp.Search(value.ToNative(subject))
	if err != nil {
		return nil, NewError(ErrPropagated, err.Error()).WithExpr(c.text).WithCause(err)
	}
	return value.FromNative(out), nil
}

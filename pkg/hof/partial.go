package hof

import (
	"fmt"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

// Partial returns a new expression reference closing over ref plus the given
// prefix of bound arguments, without evaluating anything. ref may be
// expression text or an existing *value.ExprRef (whose bound arguments are
// kept and extended).
func (rt *Runtime) Partial(ref value.Value, bound ...value.Value) (*value.ExprRef, error) {
	r, err := asExprRef("partial", ref)
	if err != nil {
		return nil, err
	}
	return r.WithBound(bound...), nil
}

// Apply evaluates the expression closed over by ref with its bound arguments
// followed by the remaining arguments supplied now; the full argument array
// is the subject of the evaluation. Compilation is lazy and cached on the
// reference.
func (rt *Runtime) Apply(ref value.Value, args ...value.Value) (value.Value, error) {
	r, err := asExprRef("apply", ref)
	if err != nil {
		return nil, err
	}
	compiled, ok := r.Handle().(engine.Compiled)
	if !ok {
		compiled, err = rt.compile(r.Text)
		if err != nil {
			return nil, err
		}
		r.SetHandle(compiled)
	}
	subject := make([]value.Value, 0, len(r.Bound)+len(args))
	subject = append(subject, r.Bound...)
	subject = append(subject, args...)
	return compiled.Evaluate(subject)
}

func asExprRef(op string, v value.Value) (*value.ExprRef, error) {
	switch t := v.(type) {
	case *value.ExprRef:
		return t, nil
	case string:
		return value.NewExprRef(t), nil
	default:
		return nil, engine.NewError(engine.ErrTypeMismatch,
			fmt.Sprintf("%s expects an expression reference or expression text, got %s", op, value.Kind(v)))
	}
}

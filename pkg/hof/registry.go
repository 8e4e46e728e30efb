package hof

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

// Func is the implementation behind a registered combinator name.
// args arrive in the fixed positional order (expressionText, collection,
// ...extraArgs); results are plain Values with null as the uniform
// not-found/empty sentinel.
type Func func(rt *Runtime, args []value.Value) (value.Value, error)

// Definition describes one registered combinator.
type Definition struct {
	// Name is the fixed name the combinator is invoked under.
	Name string
	// Signature is a compact argument-kind string validated before dispatch:
	// one code per required argument ("s" string, "a" array, "x" any), with
	// a trailing "*" allowing any number of additional arguments.
	Signature string
	// Fn is the implementation.
	Fn Func
}

// Registry exposes the combinator library to the surrounding query pipeline
// under fixed names.
type Registry struct {
	rt   *Runtime
	defs map[string]Definition
}

// NewRegistry builds a Registry over rt with every combinator registered.
func NewRegistry(rt *Runtime) *Registry {
	reg := &Registry{rt: rt, defs: make(map[string]Definition)}
	for _, def := range definitions() {
		reg.defs[def.Name] = def
	}
	return reg
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call validates args against the named combinator's signature and
// dispatches to it.
func (r *Registry) Call(name string, args ...value.Value) (value.Value, error) {
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", name)
	}
	if err := def.validate(args); err != nil {
		return nil, err
	}
	return def.Fn(r.rt, args)
}

func (d Definition) validate(args []value.Value) error {
	sig := d.Signature
	variadic := strings.HasSuffix(sig, "*")
	if variadic {
		sig = strings.TrimSuffix(sig, "*")
	}
	if len(args) < len(sig) || (!variadic && len(args) > len(sig)) {
		return engine.NewError(engine.ErrTypeMismatch,
			fmt.Sprintf("%s takes %d argument(s), got %d", d.Name, len(sig), len(args)))
	}
	for i := 0; i < len(sig); i++ {
		switch sig[i] {
		case 's':
			if _, ok := args[i].(string); !ok {
				return engine.NewError(engine.ErrTypeMismatch,
					fmt.Sprintf("argument %d of %s must be a string, got %s", i+1, d.Name, value.Kind(args[i])))
			}
		case 'a':
			if _, ok := args[i].([]value.Value); !ok {
				return engine.NewError(engine.ErrTypeMismatch,
					fmt.Sprintf("argument %d of %s must be an array, got %s", i+1, d.Name, value.Kind(args[i])))
			}
		case 'x':
			// any
		}
	}
	return nil
}

// definitions lists every combinator under its fixed name.
// some/every/fold are aliases kept for expression authors used to the
// original function set.
func definitions() []Definition {
	mapFn := func(rt *Runtime, args []value.Value) (value.Value, error) {
		out, err := rt.Map(args[0].(string), args[1].([]value.Value))
		return asValue(out, err)
	}
	anyFn := func(rt *Runtime, args []value.Value) (value.Value, error) {
		ok, err := rt.Any(args[0].(string), args[1].([]value.Value))
		return asValue(ok, err)
	}
	allFn := func(rt *Runtime, args []value.Value) (value.Value, error) {
		ok, err := rt.All(args[0].(string), args[1].([]value.Value))
		return asValue(ok, err)
	}
	reduceFn := func(rt *Runtime, args []value.Value) (value.Value, error) {
		return rt.Reduce(args[0].(string), args[1].([]value.Value), args[2])
	}

	return []Definition{
		{Name: "map", Signature: "sa", Fn: mapFn},
		{Name: "flat_map", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.FlatMap(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "filter", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.Filter(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "reject", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.Reject(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "any", Signature: "sa", Fn: anyFn},
		{Name: "some", Signature: "sa", Fn: anyFn},
		{Name: "all", Signature: "sa", Fn: allFn},
		{Name: "every", Signature: "sa", Fn: allFn},
		{Name: "find", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			return rt.Find(args[0].(string), args[1].([]value.Value))
		}},
		{Name: "find_index", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			return rt.FindIndex(args[0].(string), args[1].([]value.Value))
		}},
		{Name: "count", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			n, err := rt.Count(args[0].(string), args[1].([]value.Value))
			return asValue(float64(n), err)
		}},
		{Name: "sort_by", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.SortBy(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "group_by", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.GroupBy(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "partition", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			matches, nonMatches, err := rt.Partition(args[0].(string), args[1].([]value.Value))
			if err != nil {
				return nil, err
			}
			return []value.Value{matches, nonMatches}, nil
		}},
		{Name: "min_by", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			return rt.MinBy(args[0].(string), args[1].([]value.Value))
		}},
		{Name: "max_by", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			return rt.MaxBy(args[0].(string), args[1].([]value.Value))
		}},
		{Name: "unique_by", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.UniqueBy(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "reduce", Signature: "sax", Fn: reduceFn},
		{Name: "fold", Signature: "sax", Fn: reduceFn},
		{Name: "scan", Signature: "sax", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.Scan(args[0].(string), args[1].([]value.Value), args[2])
			return asValue(out, err)
		}},
		{Name: "take_while", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.TakeWhile(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "drop_while", Signature: "sa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.DropWhile(args[0].(string), args[1].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "zip_with", Signature: "saa", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			out, err := rt.ZipWith(args[0].(string), args[1].([]value.Value), args[2].([]value.Value))
			return asValue(out, err)
		}},
		{Name: "walk", Signature: "sx", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			return rt.Walk(args[0].(string), args[1])
		}},
		{Name: "partial", Signature: "x*", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			ref, err := rt.Partial(args[0], args[1:]...)
			return asValue(ref, err)
		}},
		{Name: "apply", Signature: "x*", Fn: func(rt *Runtime, args []value.Value) (value.Value, error) {
			return rt.Apply(args[0], args[1:]...)
		}},
	}
}

// asValue collapses a typed result and error into the (Value, error) shape
// without boxing a typed nil on the error path.
func asValue(v interface{}, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Package hof implements the higher-order combinators that drive repeated
// evaluation of a compiled sub-expression over the elements of a collection:
// map, filter, quantifiers, search, sort/group/partition, fold/scan,
// structural recursion and partial application.
//
// Each combinator receives raw expression text plus a collection, obtains a
// compiled handle from the engine (through the cache when one is configured)
// and iterates the collection on the calling goroutine. There is no internal
// parallelism across elements; outputs follow source order except where a
// combinator's contract explicitly reorders or buckets, and any evaluation
// error aborts the whole call.
//
// # Example
//
//	rt := hof.New(hof.WithCache(cache.New(0)))
//	adults, err := rt.Filter("age >= `18`", people)
package hof

import (
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/cache"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
)

// Runtime owns the collaborators shared by combinator calls: the expression
// engine and the optional compiled-expression cache. The cache is the only
// state shared across calls; everything else is private to one invocation.
type Runtime struct {
	eng   engine.Engine
	cache *cache.Cache
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithEngine replaces the default go-jmespath engine.
func WithEngine(e engine.Engine) Option {
	return func(rt *Runtime) {
		rt.eng = e
	}
}

// WithCache supplies a compiled-expression cache. Without one, every
// combinator call compiles its expression text afresh.
func WithCache(c *cache.Cache) Option {
	return func(rt *Runtime) {
		rt.cache = c
	}
}

// New creates a Runtime with the default engine and no cache.
func New(opts ...Option) *Runtime {
	rt := &Runtime{eng: engine.Default()}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// compile resolves expression text to a compiled handle, consulting the
// cache when configured. A cache hit and a fresh compile are
// observationally indistinguishable.
func (rt *Runtime) compile(text string) (engine.Compiled, error) {
	if rt.cache == nil {
		return rt.eng.Compile(text)
	}
	return rt.cache.GetOrCompile(text, func() (engine.Compiled, error) {
		return rt.eng.Compile(text)
	})
}

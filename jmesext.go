// Package jmesext provides higher-order extension combinators for JMESPath:
// map, filter, quantifiers, search, sort/group/partition, fold/scan,
// structural recursion and partial application, each driven by a
// sub-expression supplied as a runtime string and compiled against the
// embedded JMESPath engine.
//
// # Quick Start
//
//	lib := jmesext.New()
//
//	people := value.MustDecodeJSON(`[{"name":"ada","age":36},{"name":"bob","age":17}]`)
//	adults, err := lib.Call("filter", "age >= `18`", people)
//
//	// Or use the typed API directly:
//	names, err := lib.Runtime().Map("name", people.([]value.Value))
//
// # Caching
//
// Combinator calls often sit inside outer loops that re-use the same
// sub-expression text; configure a cache so each distinct text is compiled
// once per process:
//
//	lib := jmesext.New(jmesext.WithCacheSize(0)) // 0 = unbounded
//
// A cache hit and a fresh compile are observationally indistinguishable.
// If expression text is derived from external, high-cardinality input, set a
// positive capacity so the cache evicts instead of growing without bound.
//
// # More Information
//
//   - Value model: github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value
//   - Engine boundary: github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine
//   - Combinators: github.com/joshrotenberg/jmespath-extensions-sub000/pkg/hof
//   - Cache: github.com/joshrotenberg/jmespath-extensions-sub000/pkg/cache
package jmesext

import (
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/cache"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/hof"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

// Library bundles the combinator runtime with its name registry.
// Safe for concurrent use: the cache is the only shared mutable state and
// is itself synchronized.
type Library struct {
	rt  *hof.Runtime
	reg *hof.Registry
}

// Option configures a Library.
type Option func(*config)

type config struct {
	engine engine.Engine
	cache  *cache.Cache
}

// WithEngine replaces the default go-jmespath backend.
func WithEngine(e engine.Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithCache supplies an existing compiled-expression cache, e.g. one shared
// between several Library instances or pre-warmed by the host.
func WithCache(c *cache.Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithCacheSize creates a fresh cache with the given capacity
// (0 = unbounded, n > 0 = LRU-capped).
func WithCacheSize(capacity int) Option {
	return func(cfg *config) {
		cfg.cache = cache.New(capacity)
	}
}

// New creates a Library. Without options it uses the go-jmespath engine and
// no cache, compiling every expression text afresh.
func New(opts ...Option) *Library {
	cfg := &config{engine: engine.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	rtOpts := []hof.Option{hof.WithEngine(cfg.engine)}
	if cfg.cache != nil {
		rtOpts = append(rtOpts, hof.WithCache(cfg.cache))
	}
	rt := hof.New(rtOpts...)
	return &Library{rt: rt, reg: hof.NewRegistry(rt)}
}

// Call invokes a combinator by its registered name with the fixed positional
// argument order (expressionText, collection, ...extraArgs).
func (l *Library) Call(name string, args ...value.Value) (value.Value, error) {
	return l.reg.Call(name, args...)
}

// Names returns every registered combinator name, sorted.
func (l *Library) Names() []string {
	return l.reg.Names()
}

// Runtime exposes the typed combinator API.
func (l *Library) Runtime() *hof.Runtime {
	return l.rt
}

package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/cache"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/engine"
)

func compileOne(t *testing.T, text string) engine.Compiled {
	t.Helper()
	expr, err := engine.Default().Compile(text)
	if err != nil {
		t.Fatal(err)
	}
	return expr
}

func TestCacheNew(t *testing.T) {
	c := cache.New(10)
	if got := c.Len(); got != 0 {
		t.Fatalf("expected empty cache, got %d", got)
	}
	if got := c.Capacity(); got != 10 {
		t.Fatalf("expected capacity 10, got %d", got)
	}
}

func TestCacheUnboundedByDefault(t *testing.T) {
	c := cache.New(0)
	for i := 0; i < 300; i++ {
		c.Set(fmt.Sprintf("k%d", i), compileOne(t, "a"))
	}
	if got := c.Len(); got != 300 {
		t.Fatalf("expected 300 entries with no eviction, got %d", got)
	}
}

func TestCacheSetGet(t *testing.T) {
	c := cache.New(4)
	expr := compileOne(t, "name")
	c.Set("name", expr)
	if got := c.Len(); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
	got, ok := c.Get("name")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != expr {
		t.Fatal("expected same compiled handle")
	}
}

func TestCacheMiss(t *testing.T) {
	c := cache.New(4)
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected cache miss")
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := cache.New(3)
	for _, k := range []string{"a", "b", "c", "d"} {
		c.Set(k, compileOne(t, "x"))
	}
	if got := c.Len(); got != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", got)
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal(`expected "a" to be evicted (LRU)`)
	}
	if _, ok := c.Get("d"); !ok {
		t.Fatal(`expected most-recently-inserted "d" to survive`)
	}
}

func TestCacheGetPromotes(t *testing.T) {
	c := cache.New(2)
	c.Set("a", compileOne(t, "x"))
	c.Set("b", compileOne(t, "x"))
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected hit")
	}
	c.Set("c", compileOne(t, "x"))
	if _, ok := c.Get("a"); !ok {
		t.Fatal(`expected promoted "a" to survive`)
	}
	if _, ok := c.Get("b"); ok {
		t.Fatal(`expected "b" to be evicted`)
	}
}

func TestCacheGetOrCompile(t *testing.T) {
	c := cache.New(4)
	calls := 0
	compile := func() (engine.Compiled, error) {
		calls++
		return engine.Default().Compile("age")
	}
	first, err := c.GetOrCompile("age", compile)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.GetOrCompile("age", compile)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 compile, got %d", calls)
	}
	if first != second {
		t.Fatal("expected the cached handle on the second call")
	}
}

func TestCacheGetOrCompileNeverCachesErrors(t *testing.T) {
	c := cache.New(4)
	calls := 0
	failing := func() (engine.Compiled, error) {
		calls++
		return nil, fmt.Errorf("compile failed")
	}
	if _, err := c.GetOrCompile("bad", failing); err == nil {
		t.Fatal("expected error")
	}
	if _, err := c.GetOrCompile("bad", failing); err == nil {
		t.Fatal("expected error again")
	}
	if calls != 2 {
		t.Fatalf("expected 2 compile attempts, got %d", calls)
	}
	if c.Len() != 0 {
		t.Fatal("errors must not be cached")
	}
}

func TestCacheCounters(t *testing.T) {
	c := cache.New(4)
	c.Get("k")
	c.Set("k", compileOne(t, "x"))
	c.Get("k")
	c.Get("k")
	if c.Hits() != 2 || c.Misses() != 1 {
		t.Fatalf("hits/misses = %d/%d, want 2/1", c.Hits(), c.Misses())
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := cache.New(4)
	c.Set("k", compileOne(t, "x"))
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after Invalidate")
	}
}

func TestCacheClear(t *testing.T) {
	c := cache.New(4)
	for _, k := range []string{"a", "b", "c"} {
		c.Set(k, compileOne(t, "x"))
	}
	c.Get("a")
	c.Clear()
	if got := c.Len(); got != 0 {
		t.Fatalf("expected 0 after Clear, got %d", got)
	}
	if c.Hits() != 0 || c.Misses() != 0 {
		t.Fatal("expected counters reset after Clear")
	}
}

func TestCacheConcurrentGetOrCompile(t *testing.T) {
	c := cache.New(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%5)
				_, err := c.GetOrCompile(key, func() (engine.Compiled, error) {
					return engine.Default().Compile("a.b")
				})
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if got := c.Len(); got != 5 {
		t.Fatalf("expected 5 entries, got %d", got)
	}
}

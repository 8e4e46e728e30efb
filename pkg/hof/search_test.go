package hof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/hof"
	"github.com/joshrotenberg/jmespath-extensions-sub000/pkg/value"
)

func TestFind(t *testing.T) {
	rt := hof.New()
	coll := arr(t, `[{"id":1,"age":10},{"id":2,"age":20},{"id":3,"age":30}]`)

	got, err := rt.Find("age >= `18`", coll)
	require.NoError(t, err)
	assert.True(t, value.Equal(got, coll[1]), "find returns the first matching element")
}

func TestFindMissIsNull(t *testing.T) {
	rt := hof.New()
	coll := arr(t, `[{"age":10}]`)

	got, err := rt.Find("age >= `99`", coll)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindShortCircuits(t *testing.T) {
	eng, _, evals := newCountingEngine()
	rt := hof.New(hof.WithEngine(eng))
	coll := arr(t, `[true, true, true]`)

	_, err := rt.Find("@", coll)
	require.NoError(t, err)
	assert.Equal(t, 1, *evals)
}

func TestFindIndex(t *testing.T) {
	rt := hof.New()
	coll := arr(t, `[{"age":10},{"age":20},{"age":30}]`)

	got, err := rt.FindIndex("age >= `18`", coll)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestFindIndexMissIsNull(t *testing.T) {
	rt := hof.New()
	coll := arr(t, `[{"age":10}]`)

	got, err := rt.FindIndex("age >= `99`", coll)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCount(t *testing.T) {
	rt := hof.New()
	coll := arr(t, `[1,2,3,4,5]`)

	got, err := rt.Count("@ >= `3`", coll)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestCountEmpty(t *testing.T) {
	rt := hof.New()
	got, err := rt.Count("@", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

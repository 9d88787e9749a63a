package knots

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if v := Uniform(0, 3, 500); v != nil {
		t.Errorf("expected no knot vector for n=0, got %s", v)
	}
}

func TestUniformFloorToStep(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Uniform(4, 3, 500)
	want := Vector{0, 0.166, 0.332, 0.5, 0.666, 0.832, 1}
	if d := cmp.Diff(want, v); d != "" {
		t.Errorf("unexpected knot vector (-want +got):\n%s", d)
	}
	require.NoError(t, v.Validate())
}

func TestUniformIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 1; n < 50; n++ {
		for m := 2; m <= 5; m++ {
			v1, v2 := Uniform(n, m, 500), Uniform(n, m, 500)
			assert.Equal(t, v1, v2)
			assert.Equal(t, n+m, v1.Len())
			assert.NoError(t, v1.Validate(), "n=%d, m=%d", n, m)
		}
	}
}

func TestMoveClampsToNeighbours(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Uniform(4, 3, 500)
	got := v.Move(2, 0.9)
	assert.Equal(t, v[3], got)
	assert.Equal(t, v[3], v[2])
	got = v.Move(2, -1)
	assert.Equal(t, v[1], got)
	assert.Equal(t, 0.0, v.Move(0, 0.3))
	assert.Equal(t, 1.0, v.Move(v.Last(), 0.3))
	assert.Equal(t, 0.4, v.Move(3, 0.4))
}

func TestMovePanicsOutOfRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Uniform(2, 2, 500)
	assert.Panics(t, func() { v.Move(4, 0.5) })
}

func TestMoveKeepsMonotonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewSource(7))
	v := Uniform(10, 4, 500)
	for step := 0; step < 1000; step++ {
		v.Move(rnd.Intn(v.Len()), rnd.Float64()*1.4-0.2)
		require.NoError(t, v.Validate(), "after step %d: %s", step, v)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, errors.Is(Vector{}.Validate(), ErrEmpty))
	assert.True(t, errors.Is(Vector{0, 0.6, 0.5, 1}.Validate(), ErrNotMonotonic))
	assert.True(t, errors.Is(Vector{0.1, 0.5, 1}.Validate(), ErrOutOfRange))
	assert.True(t, errors.Is(Vector{0, 0.5, 0.9}.Validate(), ErrOutOfRange))
}

func TestDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Uniform(4, 3, 500)
	_, _, ok := v.Domain(3)
	assert.False(t, ok, "7 knots are too few for order 3")
	v = Uniform(6, 3, 500)
	lo, hi, ok := v.Domain(3)
	require.True(t, ok)
	assert.Equal(t, v[2], lo)
	assert.Equal(t, v[6], hi)
}

func TestMultiplicityAndString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Vector{0, 0.5, 0.5, 1}
	assert.Equal(t, 2, v.Multiplicity(1))
	assert.Equal(t, 1, v.Multiplicity(0))
	assert.Equal(t, "[0,0.5,0.5,1]", v.String())
	c := v.Clone()
	c[1] = 0.2
	assert.Equal(t, 0.5, v[1])
}

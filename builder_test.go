package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/position"
)

// inserter is satisfied by both Hierarchy and Builder.
type inserter interface {
	Insert(parent position.ID, t position.Transform) position.ID
}

func buildScene(in inserter) []position.ID {
	ids := []position.ID{position.Root()}
	a := in.Insert(position.Root(), position.Translation(1, 0, 0))
	b := in.Insert(a, position.Translation(0, 1, 0))
	c := in.Insert(position.Root(), position.Translation(0, 0, 1))
	d := in.Insert(b, position.Translation(2, 0, 0))
	e := in.Insert(c, position.Translation(0, 3, 0))
	f := in.Insert(a, position.Translation(0, 0, 4))
	return append(ids, a, b, c, d, e, f)
}

// go test -run ^TestBuilderMatchesInsert$ . -count 1
func TestBuilderMatchesInsert(t *testing.T) {
	h := position.New()
	want := buildScene(h)

	b := position.NewBuilder(position.WithCapacity(16))
	got := buildScene(b)
	require.Equal(t, want, got)
	assert.Equal(t, h.Len(), b.Len())

	built := b.Build()
	assert.Equal(t, h.Generations(), built.Generations())
	hp, bp := h.Flatten(), built.Flatten()
	for _, id := range want {
		assert.Equal(t, h.Transform(id), built.Transform(id), "transform %s", id)
		assert.Equal(t, hp.WorldMatrix(id), bp.WorldMatrix(id), "matrix %s", id)
	}
}

// go test -run ^TestBuilderReuse$ . -count 1
func TestBuilderReuse(t *testing.T) {
	b := position.NewBuilder()
	a := b.Insert(position.Root(), position.Translation(1, 1, 1))
	first := b.Build()

	b.Update(a, position.Translation(2, 2, 2))
	c := b.Insert(a, position.Translation(1, 0, 0))
	second := b.Build()

	assert.Equal(t, 2, first.Len())
	assert.False(t, first.Contains(c))
	assert.Equal(t, position.Translation(1, 1, 1), first.Transform(a))
	assert.Equal(t, at(3, 2, 2), second.WorldMatrix(c).Mul4x1(origin))

	// the built hierarchy is independent and still accepts inserts
	second.Insert(position.Root(), position.Identity())
	assert.Equal(t, 3, b.Len())
}

func TestBuilderPreconditions(t *testing.T) {
	b := position.NewBuilder()
	assert.Panics(t, func() { b.Insert(position.ID{Generation: 1}, position.Identity()) })
	assert.Panics(t, func() { b.Update(position.ID{Offset: 1}, position.Identity()) })
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.Contains(position.Root()))
}

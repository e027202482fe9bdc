package position

import "fmt"

// Builder assembles a Hierarchy without paying for the shifts Insert does
// when a shallower generation grows. Every generation is collected in its own
// segment and the segments are concatenated once, in Build.
//
// The IDs a Builder hands out are exactly those a Hierarchy would return for
// the same sequence of Insert calls, so code can switch between the two.
//
// Example:
//
//	b := position.NewBuilder()
//	arm := b.Insert(position.Root(), position.Translation(0, 1, 0))
//	b.Insert(arm, position.Translation(1, 0, 0))
//	h := b.Build()
type Builder struct {
	gens     [][]delta
	capacity int
	n        int
}

// NewBuilder creates a Builder holding only the root.
func NewBuilder(opts ...Option) *Builder {
	o := buildOptions(opts)
	b := &Builder{
		gens:     make([][]delta, 1, o.depth),
		capacity: o.capacity,
		n:        1,
	}
	b.gens[0] = []delta{{transform: Identity()}}
	return b
}

// Len returns the number of nodes collected so far, the root included.
func (b *Builder) Len() int { return b.n }

// Contains reports whether id was issued by this builder.
func (b *Builder) Contains(id ID) bool {
	return int(id.Generation) < len(b.gens) && int(id.Offset) < len(b.gens[id.Generation])
}

// Insert adds a node under parent and returns its ID. It panics if parent
// was not issued by this builder.
func (b *Builder) Insert(parent ID, t Transform) ID {
	if !b.Contains(parent) {
		panic(fmt.Sprintf("position: insert under unknown parent %s", parent))
	}
	g := int(parent.Generation) + 1
	if g == len(b.gens) {
		b.gens = append(b.gens, nil)
	}
	offset := len(b.gens[g])
	b.gens[g] = append(b.gens[g], delta{transform: t, parent: parent.Offset})
	b.n++
	return ID{Generation: uint32(g), Offset: uint32(offset)}
}

// Update replaces the local transform of id. It panics if id was not issued
// by this builder.
func (b *Builder) Update(id ID, t Transform) {
	if !b.Contains(id) {
		panic(fmt.Sprintf("position: unknown id %s", id))
	}
	b.gens[id.Generation][id.Offset].transform = t
}

// Build lays the collected nodes out generation by generation and returns
// the resulting Hierarchy. The builder keeps its contents and may continue
// to be used; later changes do not affect hierarchies already built.
func (b *Builder) Build() *Hierarchy {
	h := &Hierarchy{
		deltas: make([]delta, 0, max(b.n, b.capacity)),
		gens:   make([]Generation, 0, len(b.gens)),
	}
	for _, seg := range b.gens {
		h.gens = append(h.gens, Generation{Start: len(h.deltas), Len: len(seg)})
		h.deltas = append(h.deltas, seg...)
	}
	return h
}

package position

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Hierarchy stores the local transform of every node of a transform tree in
// one flat slice, ordered generation by generation: the root first, then all
// of its children, then all grandchildren, and so on. A generation table
// records where each generation starts inside that slice.
//
// Because a node's parent always lives in the previous generation, the whole
// tree can be resolved to world matrices in a single forward pass (see
// Flatten) with no recursion and no pointer chasing.
//
// Nodes are never removed or re-parented. Inserting into a generation that is
// not the deepest one moves every node of the deeper generations by one slot,
// so the intended usage is to build the tree once (deepest generations last,
// or through a Builder) and then only call Update.
//
// A Hierarchy is not safe for concurrent mutation. Share it between readers
// with Shared.
type Hierarchy struct {
	deltas []delta      // all nodes, generation by generation
	gens   []Generation // one entry per generation, gens[0] is the root
}

// New creates a Hierarchy containing only the root, which carries the
// identity transform.
//
// Parameters:
//   - opts: Optional capacity hints, see WithCapacity and WithDepth.
//
// Returns:
//   - The newly created Hierarchy.
func New(opts ...Option) *Hierarchy {
	o := buildOptions(opts)
	h := &Hierarchy{
		deltas: make([]delta, 1, o.capacity),
		gens:   make([]Generation, 1, o.depth),
	}
	h.deltas[0] = delta{transform: Identity()}
	h.gens[0] = Generation{Start: 0, Len: 1}
	return h
}

// Root returns the ID of the root node. It is the same for every Hierarchy.
func (h *Hierarchy) Root() ID { return Root() }

// Len returns the number of nodes, the root included.
func (h *Hierarchy) Len() int { return len(h.deltas) }

// Depth returns the number of generations, the root generation included.
func (h *Hierarchy) Depth() int { return len(h.gens) }

// GenerationLen returns the number of nodes in generation g, or 0 if the
// hierarchy is not that deep.
func (h *Hierarchy) GenerationLen(g int) int {
	if g < 0 || g >= len(h.gens) {
		return 0
	}
	return h.gens[g].Len
}

// Generations returns a copy of the generation table.
func (h *Hierarchy) Generations() []Generation {
	return slices.Clone(h.gens)
}

// Contains reports whether id was issued by this hierarchy.
func (h *Hierarchy) Contains(id ID) bool {
	return contains(h.gens, id)
}

// Insert adds a new node under parent and returns its ID. The node is
// appended to the end of generation parent.Generation+1.
//
// If that generation is not the deepest one, every node of the deeper
// generations moves one slot along the flat storage. Their IDs stay valid
// and keep resolving to the same data. The cost is linear in the number of
// moved nodes.
//
// Insert panics if parent was not issued by this hierarchy. Nothing is
// modified in that case.
//
// Parameters:
//   - parent: The node the new node is attached to.
//   - t: The local transform of the new node, relative to parent.
//
// Returns:
//   - The ID of the new node.
func (h *Hierarchy) Insert(parent ID, t Transform) ID {
	if !contains(h.gens, parent) {
		panic(fmt.Sprintf("position: insert under unknown parent %s", parent))
	}
	g := int(parent.Generation) + 1
	var at, offset int
	if g == len(h.gens) {
		last := h.gens[g-1]
		at = last.Start + last.Len
		h.gens = append(h.gens, Generation{Start: at, Len: 1})
		if debugEnabled() {
			Logger().Debug("position: new generation", slog.Int("generation", g))
		}
	} else {
		cur := &h.gens[g]
		at = cur.Start + cur.Len
		offset = cur.Len
		cur.Len++
		for i := g + 1; i < len(h.gens); i++ {
			h.gens[i].Start++
		}
		if shifted := len(h.deltas) - at; shifted > 0 && debugEnabled() {
			Logger().Debug("position: insert shifted deeper generations",
				slog.Int("generation", g),
				slog.Int("shifted", shifted))
		}
	}
	h.deltas = insertAt(h.deltas, at, delta{transform: t, parent: parent.Offset})
	return ID{Generation: uint32(g), Offset: uint32(offset)}
}

// Update replaces the local transform of id. It panics if id was not issued
// by this hierarchy.
func (h *Hierarchy) Update(id ID, t Transform) {
	h.deltas[h.mustLoc(id)].transform = t
}

// Transform returns the local transform of id. It panics if id was not issued
// by this hierarchy.
func (h *Hierarchy) Transform(id ID) Transform {
	return h.deltas[h.mustLoc(id)].transform
}

// Parent returns the ID of id's parent. It panics for the root and for IDs
// not issued by this hierarchy.
func (h *Hierarchy) Parent(id ID) ID {
	i := h.mustLoc(id)
	if id.Generation == 0 {
		panic("position: root has no parent")
	}
	return ID{Generation: id.Generation - 1, Offset: h.deltas[i].parent}
}

// WorldMatrix resolves the world matrix of id by composing the local
// transforms from the root down: world(parent) * local. The cost is
// proportional to the depth of id; use Flatten to resolve every node at once.
//
// WorldMatrix panics if id was not issued by this hierarchy.
func (h *Hierarchy) WorldMatrix(id ID) mgl32.Mat4 {
	return h.worldMatrix(id, h.mustLoc(id))
}

func (h *Hierarchy) worldMatrix(id ID, i int) mgl32.Mat4 {
	d := &h.deltas[i]
	if id.Generation == 0 {
		return d.transform.Mat4()
	}
	parent := ID{Generation: id.Generation - 1, Offset: d.parent}
	return h.worldMatrix(parent, loc(h.gens, parent)).Mul4(d.transform.Mat4())
}

// Flatten resolves the world matrix of every node in one forward pass and
// returns them as an immutable snapshot. Later changes to the hierarchy are
// not visible through the snapshot.
func (h *Hierarchy) Flatten() Positions {
	return h.FlattenInto(nil)
}

// FlattenInto is Flatten writing into dst's backing array when it has room
// for every node, so a caller flattening every frame can recycle one buffer.
// The returned Positions aliases that buffer; the caller must not write to it
// while the snapshot is in use.
func (h *Hierarchy) FlattenInto(dst []mgl32.Mat4) Positions {
	n := len(h.deltas)
	if cap(dst) < n {
		dst = make([]mgl32.Mat4, 0, n)
	} else {
		dst = dst[:0]
	}
	dst = append(dst, h.deltas[0].transform.Mat4())

	// Generation g-1 is complete in dst before generation g starts, and dst
	// mirrors the flat layout, so a parent's index is prev + parent offset.
	prev := 0
	for _, gen := range h.gens[1:] {
		for i := gen.Start; i < gen.Start+gen.Len; i++ {
			d := &h.deltas[i]
			dst = append(dst, dst[prev+int(d.parent)].Mul4(d.transform.Mat4()))
		}
		prev = gen.Start
	}
	return Positions{
		gens: slices.Clone(h.gens),
		mats: dst,
	}
}

// Clone returns an independent deep copy of the hierarchy.
func (h *Hierarchy) Clone() *Hierarchy {
	return &Hierarchy{
		deltas: slices.Clone(h.deltas),
		gens:   slices.Clone(h.gens),
	}
}

func (h *Hierarchy) mustLoc(id ID) int {
	if !contains(h.gens, id) {
		panic(fmt.Sprintf("position: unknown id %s", id))
	}
	return loc(h.gens, id)
}

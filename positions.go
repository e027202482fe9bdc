package position

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Positions is the result of flattening a Hierarchy: the world matrix of
// every node, in the same order as the hierarchy stored its nodes at that
// moment, along with a copy of the generation table to resolve IDs.
//
// Positions is read-only. It does not follow later changes to its source;
// flatten again to observe them.
type Positions struct {
	gens []Generation
	mats []mgl32.Mat4
}

// Len returns the number of matrices in the snapshot.
func (p Positions) Len() int { return len(p.mats) }

// Contains reports whether id resolves inside this snapshot. IDs inserted
// into the source hierarchy after flattening are not contained.
func (p Positions) Contains(id ID) bool {
	return contains(p.gens, id)
}

// Loc returns the index of id's matrix inside Matrices. It panics if id does
// not resolve inside this snapshot.
func (p Positions) Loc(id ID) int {
	if !contains(p.gens, id) {
		panic(fmt.Sprintf("position: id %s not in snapshot", id))
	}
	return loc(p.gens, id)
}

// WorldMatrix returns the world matrix of id. It panics if id does not
// resolve inside this snapshot.
func (p Positions) WorldMatrix(id ID) mgl32.Mat4 {
	return p.mats[p.Loc(id)]
}

// Matrices returns the dense matrix slice. It is shared with the snapshot
// and must not be modified.
func (p Positions) Matrices() []mgl32.Mat4 { return p.mats }

// Floats returns the matrices as a flat column-major float32 slice, 16 values
// per node, ready to be copied into a GPU buffer. The slice shares memory with
// the snapshot and must not be modified.
func (p Positions) Floats() []float32 {
	if len(p.mats) == 0 {
		return nil
	}
	return unsafe.Slice(&p.mats[0][0], len(p.mats)*16)
}

// Generations returns a copy of the generation table captured at flatten time.
func (p Positions) Generations() []Generation {
	return slices.Clone(p.gens)
}

package position

import "strconv"

// ID addresses one node of a Hierarchy. It combines the node's generation
// (its depth, 0 for the root) with its offset inside that generation.
//
// IDs are plain values. They are never reused because nodes are never removed,
// but they are only meaningful for the Hierarchy that issued them and for
// Positions flattened from it.
type ID struct {
	// Generation is the depth of the node. The root is generation 0.
	Generation uint32
	// Offset is the position of the node inside its generation.
	Offset uint32
}

// Root returns the ID of the implicit root node.
func Root() ID { return ID{} }

// IsRoot reports whether id is the root.
func (id ID) IsRoot() bool { return id.Generation == 0 && id.Offset == 0 }

// String renders id as "generation:offset".
func (id ID) String() string {
	return strconv.FormatUint(uint64(id.Generation), 10) + ":" + strconv.FormatUint(uint64(id.Offset), 10)
}

// delta is one node's data: where its parent sits inside the previous
// generation, and its transform relative to that parent.
type delta struct {
	transform Transform
	parent    uint32 // offset of the parent inside generation-1
}

// Generation is one row of the generation table: the flat index where a
// generation starts and how many nodes it holds.
type Generation struct {
	Start int
	Len   int
}

// loc resolves an ID to a flat index using a generation table.
func loc(gens []Generation, id ID) int {
	return gens[id.Generation].Start + int(id.Offset)
}

// contains reports whether id is addressable in a generation table.
func contains(gens []Generation, id ID) bool {
	return int(id.Generation) < len(gens) && int(id.Offset) < gens[id.Generation].Len
}

// Package position implements a generational transform hierarchy: the local
// transforms of a tree of objects, stored so that every object's world matrix
// can be resolved in one linear pass, ready for upload to a GPU.
//
// Features:
//   - Flat storage ordered by generation (depth), with a per-generation offset
//     table instead of parent and child pointers.
//   - On-demand resolution of a single world matrix (Hierarchy.WorldMatrix).
//   - One-pass, recursion-free flattening of the whole tree (Hierarchy.Flatten)
//     into an immutable snapshot with O(1) lookup (Positions).
//   - Allocation-free per-frame flattening into a recycled buffer
//     (Hierarchy.FlattenInto) and a zero-copy float32 view (Positions.Floats).
//   - Shift-free batch construction (Builder).
//   - Copy-on-write sharing between frames (Shared).
//
// Nodes are only ever appended and updated in place; there is no removal or
// re-parenting. The root, ID{0, 0}, always exists and is never inserted.
//
// Misuse such as passing an ID from another hierarchy panics; use the
// Contains methods to validate IDs of unknown origin first.
package position

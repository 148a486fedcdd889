package emst

// BVH is the adapter contract the core engine consumes (spec §6). It is
// deliberately narrow: the engine never constructs a BVH itself, only
// traverses one built by an external collaborator.
//
// Node indexing: internal nodes occupy [0, n-2] and leaves occupy
// [n-1, 2n-2], for a total of 2n-1 nodes. This is NOT assumed to be a
// complete binary heap (children are not necessarily 2i+1/2i+2); Left/Right
// are looked up explicitly so any top-down or bottom-up (e.g. LBVH) builder
// can implement the interface.
type BVH interface {
	// Size returns n, the number of leaves (primitives). n >= 2.
	Size() int

	// Root returns the root node index, in [0, 2n-2].
	Root() int32

	// Left and Right return the child node indices of an internal node i,
	// i in [0, n-2]. Behavior is undefined for leaves.
	Left(i int32) int32
	Right(i int32) int32

	// IsLeaf reports whether i is a leaf node (equivalently i >= n-1).
	IsLeaf(i int32) bool

	// BoundingVolume returns the AABB of node i.
	BoundingVolume(i int32) AABB

	// LeafPermutation maps a leaf node index i in [n-1, 2n-2] to the
	// original primitive index in [0, n-1].
	LeafPermutation(i int32) int32
}

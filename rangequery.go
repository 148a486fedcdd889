package emst

// rangeQuery reports every original primitive index within eps of query
// (inclusive), via a manual-stack BVH descent that prunes subtrees whose
// bounding box lies entirely outside the query sphere. Grounded on the
// same explicit-stack traversal shape as traverseCPUStack, specialized to
// a fixed sphere test instead of a shrinking per-component radius.
func rangeQuery(bvh BVH, p Primitives, query []float64, eps float32, visit func(j int32)) {
	n := bvh.Size()
	if n == 0 {
		return
	}

	var stack [stackCapacity]int32
	sp := 0
	node := bvh.Root()

	for {
		if pointBoxDistance(query, bvh.BoundingVolume(node)) <= eps {
			if bvh.IsLeaf(node) {
				j := bvh.LeafPermutation(node)
				if pointDistance(query, p.At(int(j))) <= eps {
					visit(j)
				}
			} else {
				stack[sp] = bvh.Right(node)
				sp++
				node = bvh.Left(node)
				continue
			}
		}
		if sp == 0 {
			return
		}
		sp--
		node = stack[sp]
	}
}

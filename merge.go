package emst

import "sync/atomic"

// updateComponentsAndEdges resolves the current round's component-edge
// digraph and rewrites labels (spec §4.5). Each component points to
// exactly one other component (its chosen shortest outgoing edge); the
// resulting functional graph's only possible cycles are 2-cycles (a strict
// total edge order makes longer cycles between distinct chosen edges
// impossible — spec §9), broken deterministically at the lesser endpoint.
//
// Every leaf i walks its component's chain to a fixed point and rewrites
// labels(i) to that final component. Only the thread whose leaf is
// currently its component's representative (label(i) == i, checked before
// the rewrite) is responsible for emitting the merge edge, and only when
// that representative did not survive as the final component — otherwise
// two different leaves in the same component could double-emit.
func updateComponentsAndEdges(labels []int32, edges []atomic.Pointer[WeightedEdge], mstEdges []WeightedEdge, numEdges *atomic.Int32, n, workers int) {
	if n <= 1 {
		return
	}
	parallelFor(n-1, 2*n-1, workers, func(i int) {
		node := int32(i)
		component := labels[node]
		final := computeFinalComponent(labels, edges, n, component)
		labels[node] = final
		if node != component {
			return
		}
		if node != final {
			edge := loadEdge(&edges[compSlot(node, n)])
			back := numEdges.Add(1) - 1
			mstEdges[back] = edge
		}
	})
}

// computeNextComponent implements the single-step rule of spec §4.5:
// follow the component's chosen edge unless doing so would form a 2-cycle,
// in which case deterministically pick the lesser of the two components.
func computeNextComponent(labels []int32, edges []atomic.Pointer[WeightedEdge], n int, component int32) int32 {
	edge := loadEdge(&edges[compSlot(component, n)])
	next := labels[edge.Target]

	nextEdge := loadEdge(&edges[compSlot(next, n)])
	nextNext := labels[nextEdge.Target]

	if nextNext != component {
		return next
	}
	return min32(component, next)
}

// computeFinalComponent iterates computeNextComponent to a fixed point.
// No recursion, no allocation, per spec §9's design note.
func computeFinalComponent(labels []int32, edges []atomic.Pointer[WeightedEdge], n int, component int32) int32 {
	prev := component
	for {
		next := computeNextComponent(labels, edges, n, prev)
		if next == prev {
			return next
		}
		prev = next
	}
}

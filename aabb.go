package emst

import "math"

// AABB is an axis-aligned bounding box, the bounding volume every BVH node
// carries. Min/Max are indexed per dimension.
type AABB struct {
	Min []float32
	Max []float32
}

// newAABBFromPoint returns the degenerate box that contains exactly p.
func newAABBFromPoint(p []float64) AABB {
	dims := len(p)
	box := AABB{Min: make([]float32, dims), Max: make([]float32, dims)}
	for d := 0; d < dims; d++ {
		v := float32(p[d])
		box.Min[d] = v
		box.Max[d] = v
	}
	return box
}

// expand grows box in place to also contain other.
func (box *AABB) expand(other AABB) {
	for d := range box.Min {
		if other.Min[d] < box.Min[d] {
			box.Min[d] = other.Min[d]
		}
		if other.Max[d] > box.Max[d] {
			box.Max[d] = other.Max[d]
		}
	}
}

// boxDistance returns the Euclidean lower bound between any point in a and
// any point in b: zero if the boxes overlap along every axis, otherwise the
// straight-line distance between the nearest faces.
func boxDistance(a, b AABB) float32 {
	var sumSq float64
	for d := range a.Min {
		gap := axisGap(a.Min[d], a.Max[d], b.Min[d], b.Max[d])
		sumSq += float64(gap) * float64(gap)
	}
	return float32(math.Sqrt(sumSq))
}

func axisGap(aMin, aMax, bMin, bMax float32) float32 {
	if aMax < bMin {
		return bMin - aMax
	}
	if bMax < aMin {
		return aMin - bMax
	}
	return 0
}

// pointBoxDistance returns the Euclidean lower bound between a query point
// and any point contained in box.
func pointBoxDistance(query []float64, box AABB) float32 {
	var sumSq float64
	for d := range box.Min {
		q := float32(query[d])
		gap := axisGap(q, q, box.Min[d], box.Max[d])
		sumSq += float64(gap) * float64(gap)
	}
	return float32(math.Sqrt(sumSq))
}

// pointDistance returns the Euclidean distance between two points given as
// float64 coordinate slices, matching the precision the metric operates in.
func pointDistance(a, b []float64) float32 {
	var sumSq float64
	for d := range a {
		diff := a[d] - b[d]
		sumSq += diff * diff
	}
	return float32(math.Sqrt(sumSq))
}

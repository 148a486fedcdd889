package emst

import "fmt"

// Primitives is a flat, row-major point cloud: n points of dimensionality
// Dims stored back to back in Data. This mirrors the teacher's flat
// []float64 + dims convention rather than [][]float64, so the BVH and the
// hot Borůvka kernels never allocate a per-point slice header.
type Primitives struct {
	Data []float64
	Dims int
}

// NewPrimitives wraps flat row-major point data. It does not copy data.
func NewPrimitives(data []float64, dims int) Primitives {
	return Primitives{Data: data, Dims: dims}
}

// PointsFromRows converts a [][]float64 point list into flat Primitives,
// copying the data. Every row must have the same length.
func PointsFromRows(rows [][]float64) (Primitives, error) {
	if len(rows) == 0 {
		return Primitives{}, nil
	}
	dims := len(rows[0])
	flat := make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return Primitives{}, fmt.Errorf("emst: row %d has %d dimensions, want %d", i, len(row), dims)
		}
		flat = append(flat, row...)
	}
	return Primitives{Data: flat, Dims: dims}, nil
}

// Size returns the number of points.
func (p Primitives) Size() int {
	if p.Dims == 0 {
		return 0
	}
	return len(p.Data) / p.Dims
}

// At returns the coordinate slice for point i, a view into Data.
func (p Primitives) At(i int) []float64 {
	return p.Data[i*p.Dims : (i+1)*p.Dims]
}

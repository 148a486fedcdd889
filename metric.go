package emst

// Metric is the contract of spec §6: metric(origA, origB, dEuclid) must
// return a value >= dEuclid. The nearest-neighbor traversal's pruning logic
// (nearestneighbor.go) depends on this domination invariant: a radius
// shrunk using metric values remains a valid Euclidean-geometry upper bound
// for the Euclidean distance-to-box tests that guide descent.
//
// origA and origB are original primitive indices (post leaf-permutation),
// dEuclid is the Euclidean distance (or a Euclidean lower bound, when
// called with a box-to-box distance during pruning) between them.
type Metric interface {
	Evaluate(origA, origB int32, dEuclid float32) float32
}

// Euclidean is the trivial metric: it returns dEuclid unchanged. This is
// what MST uses when k == 1 (no core distances needed).
type Euclidean struct{}

// Evaluate implements Metric.
func (Euclidean) Evaluate(_, _ int32, dEuclid float32) float32 { return dEuclid }

// MutualReachability implements the HDBSCAN* mutual-reachability distance
// mreach_k(a,b) = max(core_k(a), core_k(b), d_E(a,b)), spec §4.6. Core is
// indexed by original primitive index and must have one entry per point.
type MutualReachability struct {
	Core []float32
}

// Evaluate implements Metric. It trivially satisfies the domination
// invariant since it is a max() that includes dEuclid as one operand.
func (m MutualReachability) Evaluate(a, b int32, dEuclid float32) float32 {
	d := dEuclid
	if ca := m.Core[a]; ca > d {
		d = ca
	}
	if cb := m.Core[b]; cb > d {
		d = cb
	}
	assertf(d >= dEuclid, "metric contract violation: mreach(%d,%d)=%v < d_E=%v", a, b, d, dEuclid)
	return d
}

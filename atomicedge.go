package emst

import (
	"math"
	"sync/atomic"
)

// atomicMinEdge atomically relaxes *slot to candidate if candidate is
// strictly less than the current value under WeightedEdge's total order
// (edge.go). It is a compare-and-swap retry loop: the only design spec §9
// calls out for a struct too wide to pack into one machine word. The loop
// is monotone — it only retries when a concurrent writer beat it to an
// even smaller edge, so it is bounded by the number of strictly smaller
// candidates observed, never spins on its own failure.
func atomicMinEdge(slot *atomic.Pointer[WeightedEdge], candidate WeightedEdge) {
	for {
		current := slot.Load()
		if current != nil && !candidate.less(*current) {
			return
		}
		next := candidate
		if slot.CompareAndSwap(current, &next) {
			return
		}
	}
}

// loadEdge reads the current value of an atomic edge slot, returning
// undeterminedEdge if it has never been written.
func loadEdge(slot *atomic.Pointer[WeightedEdge]) WeightedEdge {
	if p := slot.Load(); p != nil {
		return *p
	}
	return undeterminedEdge
}

// atomicMinFloat32Bits atomically relaxes the float32 stored at addr (as
// raw bits) down to candidate. It relies on the fact that IEEE-754 float32
// bit patterns order the same as their numeric values for all
// non-negative, non-NaN floats — true of every distance and radius this
// package computes — so a plain unsigned CAS loop implements a correct
// atomic min without decoding the float on every attempt.
func atomicMinFloat32Bits(addr *atomic.Uint32, candidate float32) {
	next := math.Float32bits(candidate)
	for {
		current := addr.Load()
		if next >= current {
			return
		}
		if addr.CompareAndSwap(current, next) {
			return
		}
	}
}

func loadFloat32Bits(addr *atomic.Uint32) float32 {
	return math.Float32frombits(addr.Load())
}

func storeFloat32Bits(addr *atomic.Uint32, v float32) {
	addr.Store(math.Float32bits(v))
}

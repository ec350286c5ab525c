// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_cycle.go — Cycle(n) and Wheel(n).
//
// Contract:
//   • Cycle: n ≥ 3; ring 0-1-…-(n-1)-0.
//   • Wheel: n ≥ 4; hub is the first vertex, rim is a cycle on the other n-1.
//
// Complexity: O(n).

package builder

const (
	methodCycle   = "Cycle"
	methodWheel   = "Wheel"
	minCycleNodes = 3
	minWheelNodes = 4
)

// Cycle returns a Constructor that appends C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		base := s.addVertices(n)
		ring(s, base, n)

		return nil
	}
}

// Wheel returns a Constructor that appends W_n (hub + C_{n-1}).
func Wheel(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		hub := s.addVertices(n)
		ring(s, hub+1, n-1)
		for i := 1; i < n; i++ {
			s.addEdge(hub, hub+i)
		}

		return nil
	}
}

// ring joins base..base+k-1 into a cycle.
func ring(s *sketch, base, k int) {
	for i := 0; i < k; i++ {
		s.addEdge(base+i, base+(i+1)%k)
	}
}

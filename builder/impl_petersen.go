// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_petersen.go — Petersen(): outer 5-cycle on 0..4, spokes i–(i+5),
// inner pentagram (5+i)–(5+(i+2)%5). 10 vertices, 15 edges, 3-regular.

package builder

const petersenOuter = 5

// Petersen returns a Constructor that appends the Petersen graph.
func Petersen() Constructor {
	return func(s *sketch, _ builderConfig) error {
		base := s.addVertices(2 * petersenOuter)
		ring(s, base, petersenOuter)
		for i := 0; i < petersenOuter; i++ {
			s.addEdge(base+i, base+petersenOuter+i)
			s.addEdge(base+petersenOuter+i, base+petersenOuter+(i+2)%petersenOuter)
		}

		return nil
	}
}

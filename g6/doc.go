// Package g6 implements the compact ASCII graph code.
//
// Layout:
//
//	byte 0      : n + 63                      (0 ≤ n ≤ 63)
//	bytes 1..k  : 6-bit groups + 63, MSB first, k = ceil(n(n-1)/2 / 6)
//
// The bit stream lists the upper triangle of the adjacency matrix in
// row-major order: (0,1),(0,2),…,(0,n-1),(1,2),…,(n-2,n-1). Unused low bits
// of the last group are zero.
//
// The codec is a serialisation format, not a canonical form: isomorphic graphs
// with different vertex orders encode differently. Decode(Encode(m)) == m for
// every matrix, and Encode(Decode(s)) == s for every string Decode accepts.
//
// Note that standard graph6 (nauty, gonum) lists the upper triangle column by
// column. ToStandard and FromStandard convert to and from that layout.
package g6

// Package coloring provides greedy vertex and edge coloring of simple graphs.
//
//   - GreedyVertex — single pass in index order, smallest free color, 0-based.
//     Its color count is an upper bound on the chromatic number, not the
//     chromatic number itself; the fixed order keeps results reproducible.
//   - GreedyEdge   — visits ordered pairs (u,v) in row-major order and colors
//     each undirected edge once with the smallest color not used on an edge
//     at u or at v. 0-based; the count bounds the chromatic index from above.
//   - DegreeOrder  — descending-degree order, 1-based colors, bounded palette.
//
// Forbidden colors are tracked in bitsets; the edge palette is sized for
// 2Δ−1 colors, which a greedy edge coloring never exceeds.
package coloring

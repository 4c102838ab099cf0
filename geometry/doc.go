// Package geometry defines the coordinate types shared by block, group,
// and field: a signed global Coord for positions on the unbounded plane,
// an unsigned local UCoord for indexing cells inside a single Block, and
// an inclusive axis-aligned AABB over Coord for envelope arithmetic.
//
// Complexity: every operation here is O(1).
package geometry

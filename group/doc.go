// Package group adds a global position to a block.Block, turning a local
// bit grid into a positioned region of the unbounded plane.
//
// What:
//
//   - A Group pairs a *block.Block with a GlobalCoord, the Block's
//     bottom-left corner in plane coordinates.
//   - Envelope/TopRight derive the Group's inclusive bounding box from
//     the Block's current size.
//   - Intersects is a strict AABB overlap test; IntersectsSmart is the
//     richer predicate field.Field uses to decide whether two Groups
//     must be merged before they can safely step independently.
//   - Merge, Split, and Step lift the corresponding Block operations to
//     global coordinates.
package group

// Package block implements Block, a dense rectangular bit grid and the
// local Game of Life transition (rule B3/S23) over it.
//
// What:
//
//   - A Block stores XSize*YSize cells in a flat row-major-by-Y buffer,
//     origin bottom-left, Y increasing upward.
//   - Step advances one generation in place.
//   - Resize trims dead margins and restores a one-cell dead border
//     (CutEmpty then AddBorder); Split breaks a Block into its maximal
//     connected pieces along dead column/row bands.
//   - Insert pastes another Block's live cells with OR semantics,
//     growing the receiver first if the paste would not fit.
//
// Why:
//
//   - Group (package group) keeps every Block it owns bordered by one
//     dead row/column on each side, so NeighbourCount never needs to
//     consult a neighbouring Group: reads past a Block's edge are
//     defined as 0 and that is always correct under the border
//     invariant. Resize is what restores the invariant after Step
//     shifts the live region, and Split is what keeps two pieces that
//     drift apart from sharing one oversized Block forever.
//
// Complexity:
//
//   - Step:                 O(XSize*YSize)
//   - NeighbourCount:       O(1)
//   - RowAlive/ColumnAlive: O(XSize) / O(YSize)
//   - Resize:               O(XSize*YSize)
//   - Split:                O(XSize*YSize)
//
// Errors:
//
//   - Out-of-bounds cell access is a precondition violation: Get/Set
//     panic rather than return an error (see package errors.go).
//   - All-dead Blocks are not errors: CutEmpty, Resize and Split report
//     them via a boolean ok return. Step returns nothing; a Block it
//     leaves all dead shows up as ok=false from the next Resize/Split.
package block

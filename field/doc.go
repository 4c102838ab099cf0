// Package field coordinates the whole unbounded plane: a spatial index of
// group.Groups, the per-generation step, the merge fixpoint that restores
// the no-smart-intersection invariant, and optional worker-pool
// parallelism for the per-Group transition.
//
// What:
//
//   - Field holds a bulk-loadable spatial index (field/rtree.go) keyed by
//     Group envelope, plus a lazily-created worker pool.
//   - Step drains the index, steps every Group independently, bulk-loads
//     the successors into a fresh index, then runs mergeFixpoint.
//   - StepParallel is identical except the per-Group Step calls are
//     dispatched across a fixed goroutine pool; the merge fixpoint always
//     runs serially afterward, since it mutates the shared index.
//   - mergeFixpoint repeatedly finds a Group whose smart-intersection
//     query returns more than one hit, drains every Group that smartly
//     intersects it, folds them with iterated group.Merge, and reinserts
//     the result, until a full scan finds no more conflicts.
//
// Why:
//
//   - group.Group.IntersectsSmart is what distinguishes interacting
//     Groups from Groups that merely share bounding-box space; Field is
//     the layer that acts on that distinction so Step never advances two
//     Groups whose next generation actually depends on each other.
//   - The spatial index exists so merge detection is a sequence of
//     envelope queries rather than an all-pairs scan, which grows
//     quadratic in the resident Group count as a field fragments.
//
// Complexity:
//
//   - Step:             O(n log n) index operations plus O(total Block
//     area) for the per-Group transitions.
//   - mergeFixpoint:    bounded by the number of conflicting pairs, each
//     iteration strictly shrinking the resident Group count or the
//     number of conflicts.
//   - StepParallel(n):  identical asymptotics to Step, wall-clock divided
//     across n workers for the transition phase only.
//
// Errors:
//
//   - An empty Field is never an error: BottomLeft/TopRight report it via
//     a boolean ok return, matching block and group's emptiness
//     convention.
//   - A worker goroutine that exits abnormally (its result channel closes
//     without a value) is a fatal precondition violation: StepParallel
//     panics rather than retrying or silently dropping the chunk.
package field

package block

import "fmt"

// blockErrorf wraps a precondition violation with its method context, the
// way matrix.denseErrorf does for Dense. Used only in panic messages —
// Block never returns an error value, per the package's emptiness-via-ok
// convention (see doc.go).
func blockErrorf(method string, u interface{}, detail string) string {
	return fmt.Sprintf("block.Block.%s(%v): %s", method, u, detail)
}

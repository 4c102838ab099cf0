package group

import "fmt"

// groupErrorf wraps a precondition violation with its method context, the
// way block.blockErrorf does for Block.
func groupErrorf(method, detail string) string {
	return fmt.Sprintf("group.%s: %s", method, detail)
}

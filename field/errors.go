package field

import (
	"errors"
	"fmt"
)

// ErrInvalidOption indicates a functional option received a meaningless
// value (negative worker count, non-positive chunk size). Option
// constructors panic on such input, matching builder.WithAmplitude's
// panic-on-construction policy; this sentinel exists for any caller code
// that wraps option resolution in a recovered error path.
var ErrInvalidOption = errors.New("field: invalid option value")

// ErrWorkerDied indicates a StepParallel worker goroutine's result
// channel closed without delivering a value — an abnormal exit. There is
// no retry policy: the dispatcher panics with this wrapped in its
// message.
var ErrWorkerDied = errors.New("field: worker died")

// fieldErrorf wraps a precondition violation with its method context, the
// way block.blockErrorf and group.groupErrorf do for their packages.
func fieldErrorf(method, detail string) string {
	return fmt.Sprintf("field.Field.%s: %s", method, detail)
}

package rc

import (
	"fmt"
	"os"
	"runtime"
)

// Traceback recording starts enabled when the RC_TRACEBACK environment
// variable is set.
var tracebackEnabled = os.Getenv("RC_TRACEBACK") != ""

// SetTraceback toggles recording of creation stacks on control blocks. When
// enabled, misuse reports include the stack that created the offending
// block. Recording costs one stack capture per block, so leave it off
// outside of debugging sessions.
func SetTraceback(v bool) { tracebackEnabled = v }

func defaultPanic(err error) { panic(err) }

var panicFn = defaultPanic

// SetPanicFn overrides how misuse (count underflow, allocator over-free) is
// reported. Intended for tests.
func SetPanicFn(fn func(error)) { panicFn = fn }

// ResetPanicFn restores the default panic behavior.
func ResetPanicFn() { panicFn = defaultPanic }

// captureOrigin records the current stack when traceback is enabled.
func captureOrigin() []byte {
	if !tracebackEnabled {
		return nil
	}
	buf := make([]byte, 4096)
	return buf[:runtime.Stack(buf, false)]
}

// misuse reports err through the panic hook, appending the block's creation
// stack when one was recorded.
func misuse(err error, origin []byte) {
	if len(origin) > 0 {
		err = fmt.Errorf("%w\nblock created at:\n%s", err, origin)
	}
	panicFn(err)
}

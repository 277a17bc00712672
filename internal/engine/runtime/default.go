package runtime

import "sync"

var (
	defaultMu sync.Mutex
	defaultRT *Runtime
)

// Default returns the process-wide runtime, creating a server-side one on first use.
// Code that owns an isolation boundary should build its own Runtime instead.
func Default() *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRT == nil {
		defaultRT = New()
	}
	return defaultRT
}

// ResetDefault disposes the process-wide runtime. The next call to Default creates a fresh one.
func ResetDefault() {
	defaultMu.Lock()
	rt := defaultRT
	defaultRT = nil
	defaultMu.Unlock()

	if rt != nil {
		rt.Dispose()
	}
}

package engine

import "sync/atomic"

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the handler run when a goroutine started by Go panics
// Hosts use it to restore the terminal before printing the trace; nil restores re-panicking
func SetCrashHandler(fn func(any)) {
	if fn == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&fn)
}

// Go runs fn in a new goroutine with panic recovery routed to the crash handler
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}

func handleCrash(r any) {
	if h := crashHandler.Load(); h != nil {
		(*h)(r)
		return
	}
	panic(r)
}

package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler restores the terminal before the stack is printed, set by main
var crashHandler atomic.Pointer[func(r any)]

// SetCrashHandler installs the cleanup run before a crash report
// Keeps this package independent of the terminal library
func SetCrashHandler(fn func(r any)) {
	crashHandler.Store(&fn)
}

// HandleCrash is the unified panic handler: cleanup hook, stack trace, exit
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashHandler.Load(); fn != nil && *fn != nil {
		(*fn)(r)
	}

	os.Stdout.Sync()

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

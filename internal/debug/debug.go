// Package debug provides process-wide debug logging, disabled by default and
// toggled either programmatically or through the RGB10_DEBUG environment
// variable.
package debug

import (
	"log"
	"os"
	"sync/atomic"
)

var enabled int32

func init() {
	if os.Getenv("RGB10_DEBUG") != "" {
		enabled = 1
	}
}

// Toggle turns debug logging on or off.
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Format writes a log line to stderr if debug logging is enabled.
func Format(format string, args ...interface{}) {
	if atomic.LoadInt32(&enabled) != 1 {
		return
	}
	log.Printf(format, args...)
}

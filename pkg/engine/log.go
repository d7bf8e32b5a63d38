package engine

import "fmt"

var DebugEnabled bool

// Debugf prints engine diagnostics only if DebugEnabled is true
func Debugf(format string, args ...interface{}) {
	if DebugEnabled {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

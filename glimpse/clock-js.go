//go:build js

package glimpse

import "syscall/js"

var performance = js.Global().Get("performance")

// Now returns a monotonic high resolution time in seconds.
func Now() float64 {
	return performance.Call("now").Float() / 1000.0
}

//go:build !js

package glimpse

import "time"

var startTime = time.Now()

// Now returns a monotonic high resolution time in seconds.
func Now() float64 {
	return time.Since(startTime).Seconds()
}

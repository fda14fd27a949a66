//go:build !linux

package web

import (
	"net"
	"time"
)

// roundTrip is only supported on linux.
func roundTrip(net.Conn) (time.Duration, bool) {
	return 0, false
}

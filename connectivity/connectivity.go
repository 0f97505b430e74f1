// Package connectivity reports whether the backend is currently reachable.
// Every write-path pipeline polls the gate once before its first backend
// call; there is no caching and no event stream.
package connectivity

import (
	"net"
	"time"
)

// Checker answers the single question the view-models ask before touching
// the network.
type Checker interface {
	IsInternetAvailable() bool
}

// DialChecker probes a fixed address with a short TCP dial.
type DialChecker struct {
	Addr    string
	Timeout time.Duration
}

func NewDialChecker(addr string) *DialChecker {
	return &DialChecker{Addr: addr, Timeout: 2 * time.Second}
}

func (c *DialChecker) IsInternetAvailable() bool {
	conn, err := net.DialTimeout("tcp", c.Addr, c.Timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

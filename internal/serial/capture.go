package serial

import (
	"bytes"
	"io"
	"strings"
)

// Capture is an Observer that records every transmitted byte.
// Test ROMs print their results this way.
type Capture struct {
	buf bytes.Buffer
}

// Transmit records b.
func (c *Capture) Transmit(b uint8) {
	c.buf.WriteByte(b)
}

// String returns everything transmitted so far.
func (c *Capture) String() string {
	return c.buf.String()
}

// Contains reports whether s has been transmitted.
func (c *Capture) Contains(s string) bool {
	return strings.Contains(c.buf.String(), s)
}

// Reset discards everything transmitted so far.
func (c *Capture) Reset() {
	c.buf.Reset()
}

// NewWriter returns an Observer that copies every transmitted
// byte to w.
func NewWriter(w io.Writer) Observer {
	return ObserverFunc(func(b uint8) {
		_, _ = w.Write([]byte{b})
	})
}

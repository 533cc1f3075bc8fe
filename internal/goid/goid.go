// Package goid reports the ID of the calling goroutine.
package goid

import (
	"bytes"
	"runtime"
)

var header = []byte("goroutine ")

// ID returns the current goroutine ID, or 0 if the stack header could not
// be parsed. IDs are never reused while the process runs.
//
// Only the header line is read: the buffer fits "goroutine " plus the
// widest uint64 and a space, and the digits are parsed in place.
func ID() uint64 {
	var buf [32]byte
	b, ok := bytes.CutPrefix(buf[:runtime.Stack(buf[:], false)], header)
	if !ok {
		return 0
	}
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	if len(b) == 0 {
		return 0
	}
	var id uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

package util

import "sync/atomic"

// SafeFlag is a boolean that is safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeBool creates a new SafeFlag set to false.
func NewSafeBool() *SafeFlag {
	return &SafeFlag{}
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}

// TryAcquire flips the flag from false to true. It reports false if the flag
// was already set, which lets the flag guard a single in-flight interaction.
func (sf *SafeFlag) TryAcquire() bool {
	return sf.value.CompareAndSwap(false, true)
}

// Release clears the flag.
func (sf *SafeFlag) Release() {
	sf.value.Store(false)
}

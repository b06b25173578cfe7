//go:build android || ios

package main

// Mobile platforms run a single activity per app, so no lock is needed.
func acquireLock() (bool, error) { return true, nil }

func releaseLock() {}

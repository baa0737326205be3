//go:build !linux
// +build !linux

package main

import "os"

// isTerminal falls back to checking for a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

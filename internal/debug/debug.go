//go:build !debug

// Package debug prints traces when the program is built with -tags debug.
package debug

func Printf(msg string, args ...any) {}

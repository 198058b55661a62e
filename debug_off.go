//go:build !sharedref_debug
// +build !sharedref_debug

package sharedref

const debugChecks = false

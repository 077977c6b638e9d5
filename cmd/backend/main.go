// Package main is the entry point for the sysdeck backend.
// The backend reads host telemetry on demand and serves snapshot
// records to the desktop GUI over a loopback bridge.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

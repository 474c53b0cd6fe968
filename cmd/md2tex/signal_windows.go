//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext derives a context cancelled on Ctrl+C.
// Windows has no SIGTERM to listen for.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

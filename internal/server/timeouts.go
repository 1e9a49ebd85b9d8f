package server

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	// Completing a draft evaluates every roster before responding.
	writeTimeout = 30 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 15 * time.Second

// Package engine drives a pluggable game through Idle, Running and Terminal
// phases. A Scheduler goroutine owns the Driver: it selects on the input
// channel and a fixed ticker, so rules, pools and flight state are never
// shared across goroutines.
package engine

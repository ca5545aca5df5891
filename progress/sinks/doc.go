// Package sinks implements concrete progress consumers: the in-place
// terminal status line, structured logging, and Prometheus metrics. Each
// sink satisfies the progress.Sink interface.
package sinks

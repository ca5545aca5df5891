// Package progress provides the fetch-completion accounting half of the
// decision layer: a Reporter that owns the monotonic record counter for one
// crawl run and fans each notification out to pluggable sinks such as the
// terminal status line, structured logs, or Prometheus metrics.
package progress

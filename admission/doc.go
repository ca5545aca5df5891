// Package admission implements veto filters layered on top of a crawl
// engine's own link admission rules. Filters can only narrow the engine's
// verdict; a link the engine rejected stays rejected no matter what the
// filters think.
package admission

// Package hooks is the decision layer a crawl engine embeds at two points in
// its fetch loop: deciding whether a freshly discovered link may be enqueued,
// and accounting for each fetch that completes. The engine owns transport,
// URL resolution, queueing, and storage; this package only answers the two
// questions it is asked.
package hooks

import "net/url"

// LinkOrigin identifies the document attribute a link was discovered in.
type LinkOrigin string

// Link origins reported by engines.
const (
	OriginHref   LinkOrigin = "href"
	OriginSrc    LinkOrigin = "src"
	OriginSrcset LinkOrigin = "srcset"
	OriginCSSURL LinkOrigin = "css-url"
)

// DiscoveredLink is a candidate URL exactly as it appeared in a source
// document. The text may be relative or malformed; nothing here validates it.
type DiscoveredLink struct {
	URL    string
	Origin LinkOrigin
}

// CrawlContext is the read-only crawl state the engine supplies with each
// candidate link.
type CrawlContext struct {
	// ParentURL is the URL of the document the link was found in.
	ParentURL string
	// Depth is the recursion depth of the parent document, >= 0.
	Depth int
	// StartURL is the parsed starting URL of the crawl run.
	StartURL *url.URL
	// FromCSS reports whether the link was discovered inside CSS content.
	FromCSS bool
}

// HostVerdict is the engine's own admission decision for a candidate link,
// produced by its built-in rules (robots, depth limits, scheme filters).
type HostVerdict struct {
	Allow  bool
	Reason string
}

// FetchNotice reports one completed fetch record. Handle and IRI are
// engine-owned values carried through without interpretation.
type FetchNotice struct {
	Handle  any
	URL     string
	FromCSS bool
	IRI     any
}

// AdmissionFilter decides whether a discovered link may be enqueued. A filter
// only narrows the engine's verdict: it returns false for links the engine
// already rejected, and may turn an engine yes into a no, never the reverse.
type AdmissionFilter interface {
	Decide(link DiscoveredLink, cctx CrawlContext, verdict HostVerdict) bool
}

// FetchReporter receives one notification per completed fetch record, success
// and failure alike. Implementations must not block the engine's loop.
type FetchReporter interface {
	OnFetched(notice FetchNotice)
}

// Hooks is the full contract an engine holds on this layer.
type Hooks interface {
	AdmissionFilter
	FetchReporter
}

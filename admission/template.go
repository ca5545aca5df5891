package admission

import (
	"strings"

	"github.com/webgrab/hooks"
)

const placeholderMarker = "{{"

// TemplateFilter vetoes links that still contain unresolved template
// placeholder syntax. Wiki and templating-engine artifacts such as
// /wiki/{{PAGENAME}} are URL-shaped but not fetchable, and the placeholder
// convention lives at the content level where the engine's URL rules cannot
// see it.
type TemplateFilter struct{}

// NewTemplateFilter returns a TemplateFilter.
func NewTemplateFilter() TemplateFilter {
	return TemplateFilter{}
}

// Decide returns false for any URL containing the literal substring "{{" and
// the engine's verdict unchanged otherwise. The match is case-sensitive and
// position-independent; no balanced-pair detection is attempted.
func (TemplateFilter) Decide(link hooks.DiscoveredLink, _ hooks.CrawlContext, verdict hooks.HostVerdict) bool {
	if strings.Contains(link.URL, placeholderMarker) {
		return false
	}
	return verdict.Allow
}

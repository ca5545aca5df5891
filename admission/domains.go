package admission

import (
	"net/url"
	"strings"

	"github.com/webgrab/hooks"
)

// DomainScopeFilter keeps a span-hosts grab on its intended domains. Patterns
// are exact hosts ("example.com") or suffix wildcards ("*.example.com" or
// ".example.com"); an admitted link must land on a scoped host. An empty
// scope vetoes nothing.
type DomainScopeFilter struct {
	exact    map[string]struct{}
	suffixes []string
}

// NewDomainScopeFilter builds a scope from the given patterns. Blank entries
// are skipped; hosts are compared lowercase.
func NewDomainScopeFilter(patterns []string) *DomainScopeFilter {
	scope := &DomainScopeFilter{exact: make(map[string]struct{})}
	for _, raw := range patterns {
		value := strings.TrimSpace(strings.ToLower(raw))
		if value == "" {
			continue
		}
		switch {
		case strings.HasPrefix(value, "*."):
			scope.addSuffix(strings.TrimPrefix(value, "*."))
		case strings.HasPrefix(value, "."):
			scope.addSuffix(strings.TrimPrefix(value, "."))
		default:
			scope.exact[value] = struct{}{}
		}
	}
	return scope
}

func (f *DomainScopeFilter) addSuffix(suffix string) {
	if suffix == "" {
		return
	}
	for _, existing := range f.suffixes {
		if existing == suffix {
			return
		}
	}
	f.suffixes = append(f.suffixes, suffix)
}

// Decide vetoes links whose host falls outside the scope. Relative and
// unparseable URLs pass through untouched; validating them is the engine's
// job, not this filter's.
func (f *DomainScopeFilter) Decide(link hooks.DiscoveredLink, _ hooks.CrawlContext, verdict hooks.HostVerdict) bool {
	if f == nil || f.empty() {
		return verdict.Allow
	}
	parsed, err := url.Parse(link.URL)
	if err != nil {
		return verdict.Allow
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return verdict.Allow
	}
	if !f.inScope(host) {
		return false
	}
	return verdict.Allow
}

func (f *DomainScopeFilter) empty() bool {
	return len(f.exact) == 0 && len(f.suffixes) == 0
}

func (f *DomainScopeFilter) inScope(host string) bool {
	if _, ok := f.exact[host]; ok {
		return true
	}
	for _, suffix := range f.suffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}

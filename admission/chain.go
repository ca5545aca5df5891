package admission

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/webgrab/hooks"
	"github.com/webgrab/hooks/internal/metrics"
)

// Chain composes admission filters into a single hooks.AdmissionFilter. The
// engine's verdict is the floor: a link the engine rejected never reaches the
// filters. Otherwise filters run in registration order and the first veto
// wins.
type Chain struct {
	filters []hooks.AdmissionFilter
	logger  *zap.Logger
}

// NewChain builds a Chain. A nil logger is replaced with a no-op logger.
func NewChain(logger *zap.Logger, filters ...hooks.AdmissionFilter) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{
		filters: append([]hooks.AdmissionFilter(nil), filters...),
		logger:  logger,
	}
}

// Decide implements hooks.AdmissionFilter.
func (c *Chain) Decide(link hooks.DiscoveredLink, cctx hooks.CrawlContext, verdict hooks.HostVerdict) bool {
	if !verdict.Allow {
		metrics.ObserveAdmission(metrics.OutcomeHostRejected)
		return false
	}
	for _, filter := range c.filters {
		if filter == nil {
			continue
		}
		if !filter.Decide(link, cctx, verdict) {
			c.logger.Debug("link vetoed",
				zap.String("url", link.URL),
				zap.String("parent", cctx.ParentURL),
				zap.Int("depth", cctx.Depth),
				zap.String("filter", fmt.Sprintf("%T", filter)),
			)
			metrics.ObserveAdmission(metrics.OutcomeVetoed)
			return false
		}
	}
	metrics.ObserveAdmission(metrics.OutcomeAdmitted)
	return true
}

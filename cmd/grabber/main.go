// Package main runs a reference grab loop around the decision layer: a colly
// collector discovers links, asks the admission chain before following them,
// and feeds the progress reporter as fetches complete.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/webgrab/hooks"
	"github.com/webgrab/hooks/admission"
	"github.com/webgrab/hooks/internal/config"
	"github.com/webgrab/hooks/internal/logging"
	"github.com/webgrab/hooks/internal/metrics"
	"github.com/webgrab/hooks/progress"
	"github.com/webgrab/hooks/progress/sinks"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	metrics.Init()
	go serveOps(cfg.Ops.Port, logger)

	runID := uuid.New()
	promSink, err := sinks.NewPrometheusSink(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("progress metrics init failed", zap.Error(err))
	}
	reporter := progress.NewReporter(runID, logger,
		sinks.NewStatusSink(os.Stdout),
		promSink,
	)
	filter := admission.NewChain(logger,
		admission.NewTemplateFilter(),
		admission.NewDomainScopeFilter(cfg.Crawl.AllowDomains),
	)

	logger.Info("grab starting",
		zap.String("run_id", runID.String()),
		zap.String("version", cfg.Run.Version),
		zap.Strings("start_urls", cfg.Crawl.StartURLs),
	)

	for _, start := range cfg.Crawl.StartURLs {
		if err := grab(cfg, start, filter, reporter, logger); err != nil {
			logger.Error("grab failed", zap.String("start_url", start), zap.Error(err))
		}
	}

	// Step past the in-place status line before the summary.
	fmt.Fprintln(os.Stdout)
	logger.Info("grab finished",
		zap.String("run_id", runID.String()),
		zap.Int64("records", reporter.Records()),
		zap.Int64("urls", reporter.Records()/sinks.RecordsPerURL),
	)
	if err := reporter.Close(); err != nil {
		logger.Warn("reporter close failed", zap.Error(err))
	}
}

func grab(cfg config.Config, start string, filter hooks.AdmissionFilter, reporter hooks.FetchReporter, logger *zap.Logger) error {
	startURL, err := url.Parse(start)
	if err != nil {
		return fmt.Errorf("parse start url: %w", err)
	}

	c := colly.NewCollector(
		colly.UserAgent(cfg.Run.UserAgent),
		colly.MaxDepth(cfg.Crawl.MaxDepth),
	)
	c.SetRequestTimeout(time.Duration(cfg.Crawl.TimeoutSeconds) * time.Second)

	follow := func(e *colly.HTMLElement, attr string, origin hooks.LinkOrigin) {
		raw := e.Attr(attr)
		if raw == "" {
			return
		}
		link := hooks.DiscoveredLink{URL: raw, Origin: origin}
		cctx := hooks.CrawlContext{
			ParentURL: e.Request.URL.String(),
			Depth:     e.Request.Depth,
			StartURL:  startURL,
		}
		verdict := hostVerdict(e.Request.AbsoluteURL(raw), e.Request.Depth, cfg.Crawl.MaxDepth)
		if !filter.Decide(link, cctx, verdict) {
			return
		}
		if err := e.Request.Visit(raw); err != nil {
			logger.Debug("visit skipped", zap.String("url", raw), zap.Error(err))
		}
	}
	c.OnHTML("a[href]", func(e *colly.HTMLElement) { follow(e, "href", hooks.OriginHref) })
	c.OnHTML("link[href]", func(e *colly.HTMLElement) { follow(e, "href", hooks.OriginHref) })
	c.OnHTML("img[src]", func(e *colly.HTMLElement) { follow(e, "src", hooks.OriginSrc) })
	c.OnHTML("script[src]", func(e *colly.HTMLElement) { follow(e, "src", hooks.OriginSrc) })

	// A WARC-writing engine records the request and the response separately;
	// mirror that here so the status line counts whole URLs.
	report := func(u string) {
		notice := hooks.FetchNotice{URL: u}
		reporter.OnFetched(notice)
		reporter.OnFetched(notice)
	}
	c.OnResponse(func(resp *colly.Response) {
		report(resp.Request.URL.String())
	})
	c.OnError(func(resp *colly.Response, _ error) {
		report(resp.Request.URL.String())
	})

	return c.Visit(start)
}

// hostVerdict stands in for the engine-side admission rules a real grab
// engine supplies: scheme and depth checks here, robots and scope checks in
// the engine the layer is embedded in.
func hostVerdict(absURL string, depth, maxDepth int) hooks.HostVerdict {
	switch {
	case absURL == "":
		return hooks.HostVerdict{Reason: "unresolvable url"}
	case !strings.HasPrefix(absURL, "http://") && !strings.HasPrefix(absURL, "https://"):
		return hooks.HostVerdict{Reason: "non-http scheme"}
	case maxDepth > 0 && depth >= maxDepth:
		return hooks.HostVerdict{Reason: "max depth reached"}
	}
	return hooks.HostVerdict{Allow: true, Reason: "ok"}
}

func serveOps(port int, logger *zap.Logger) {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	addr := fmt.Sprintf(":%d", port)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("ops server stopped", zap.Error(err))
	}
}

// Package resolver ties classification and extraction together: classify the
// link, look up the host's adapter, run it, return the record.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/hosts"
	"github.com/jonesrussell/linkmeta/internal/links"
	"github.com/jonesrussell/linkmeta/internal/logger"
	"github.com/jonesrussell/linkmeta/internal/metrics"
)

// Resolver resolves a raw link into the normalized metadata record. Each
// resolution is independent and stateless; concurrent calls only require the
// underlying HTTP client to be safe for concurrent use, which it is.
type Resolver struct {
	registry *hosts.Registry
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// New creates a resolver over the given adapter registry.
func New(registry *hosts.Registry, log logger.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{registry: registry, logger: log, metrics: m}
}

// Resolve classifies the link and runs the matching adapter. It returns
// domain.ErrUnsupportedHost when no classification rule matches; adapter
// failures come back as the typed errors from the domain package.
func (r *Resolver) Resolve(ctx context.Context, link string) (*domain.Record, error) {
	start := time.Now()

	cls, ok := links.Classify(link)
	if !ok {
		r.logger.Info("No classification rule matched", logger.String("link", link))
		r.observe("none", metrics.OutcomeUnsupported, start)
		return nil, fmt.Errorf("%q: %w", link, domain.ErrUnsupportedHost)
	}

	adapter, ok := r.registry.Lookup(cls.Host)
	if !ok {
		// A classified host without an adapter means the registry was
		// assembled incompletely; surface it like an unsupported link.
		r.logger.Warn("No adapter registered", logger.String("host", cls.Host.String()))
		r.observe(cls.Host.String(), metrics.OutcomeUnsupported, start)
		return nil, fmt.Errorf("%q: %w", link, domain.ErrUnsupportedHost)
	}

	record, err := adapter.Resolve(ctx, hosts.Request{Link: link, Normalized: cls.Link})
	if err != nil {
		r.logger.Error("Resolution failed",
			logger.String("host", cls.Host.String()),
			logger.String("link", link),
			logger.Error(err),
		)
		r.observe(cls.Host.String(), outcomeOf(err), start)
		return nil, err
	}

	r.logger.Info("Link resolved",
		logger.String("host", cls.Host.String()),
		logger.String("title", record.Title),
		logger.String("url", record.URL),
		logger.Duration("elapsed", time.Since(start)),
	)
	r.observe(cls.Host.String(), metrics.OutcomeOK, start)

	return record, nil
}

func (r *Resolver) observe(host, outcome string, start time.Time) {
	if r.metrics != nil {
		r.metrics.ObserveResolution(host, outcome, time.Since(start))
	}
}

func outcomeOf(err error) string {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return metrics.OutcomeUpstream
	}
	return metrics.OutcomeExtraction
}

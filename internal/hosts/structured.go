package hosts

import (
	"context"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

// StructuredAdapter is the JSON-LD based adapter shared by publisher sites
// whose article metadata lives in an application/ld+json block rather than
// in meta tags. The host and the @graph indexing are the only per-publisher
// differences.
type StructuredAdapter struct {
	host      domain.Host
	fetch     *fetch.Client
	graphLast bool
}

// NewGEOAdapter creates the geo.de adapter.
func NewGEOAdapter(f *fetch.Client) *StructuredAdapter {
	return &StructuredAdapter{host: domain.HostGEO, fetch: f}
}

// NewSueddeutscheAdapter creates the sueddeutsche.de adapter.
func NewSueddeutscheAdapter(f *fetch.Client) *StructuredAdapter {
	return &StructuredAdapter{host: domain.HostSueddeutsche, fetch: f}
}

// NewFreitagAdapter creates the freitag.de adapter.
func NewFreitagAdapter(f *fetch.Client) *StructuredAdapter {
	return &StructuredAdapter{host: domain.HostFreitag, fetch: f}
}

// NewNatGeoAdapter creates the nationalgeographic.de adapter.
func NewNatGeoAdapter(f *fetch.Client) *StructuredAdapter {
	return &StructuredAdapter{host: domain.HostNatGeo, fetch: f}
}

// NewSubstackAdapter creates the adapter for Substack newsletters.
func NewSubstackAdapter(f *fetch.Client) *StructuredAdapter {
	return &StructuredAdapter{host: domain.HostSubstack, fetch: f}
}

func (a *StructuredAdapter) Host() domain.Host {
	return a.host
}

func (a *StructuredAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	_, body, err := a.fetch.Page(ctx, req.Normalized)
	if err != nil {
		return nil, &domain.UpstreamError{Host: a.host, URL: req.Normalized, Err: err}
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, &domain.ExtractionError{Host: a.host, Stage: "parse page", Err: err}
	}

	payload, ok := extract.JSONLD(doc)
	if !ok {
		return nil, &domain.ExtractionError{Host: a.host, Stage: "json-ld"}
	}
	node, ok := extract.GraphNode(payload, a.graphLast)
	if !ok {
		return nil, &domain.ExtractionError{Host: a.host, Stage: "json-ld @graph"}
	}

	headline, ok := extract.KeyString(node, "headline")
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.host, Field: "headline"}
	}

	publisher, ok := extract.KeyString(node, "publisher", "name")
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.host, Field: "publisher.name"}
	}

	datePublished, ok := extract.KeyString(node, "datePublished")
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.host, Field: "datePublished"}
	}
	year, ok := extract.YearOf(datePublished)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.host, Field: "datePublished"}
	}

	canonical, err := extract.RequireAttr(doc, a.host, "link[rel='canonical']", "href")
	if err != nil {
		return nil, err
	}

	// Author is optional enrichment; without one the channel stays the
	// bare publisher name.
	author, _ := extract.AuthorName(node)

	return &domain.Record{
		Title:   headline,
		Channel: extract.ComposeChannel(author, publisher),
		Year:    year,
		URL:     canonical,
	}, nil
}

package hosts

import (
	"context"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

// MediaCCCAdapter resolves media.ccc.de talks from the page's meta tags.
type MediaCCCAdapter struct {
	fetch *fetch.Client
}

// NewMediaCCCAdapter creates the media.ccc.de adapter.
func NewMediaCCCAdapter(f *fetch.Client) *MediaCCCAdapter {
	return &MediaCCCAdapter{fetch: f}
}

func (a *MediaCCCAdapter) Host() domain.Host {
	return domain.HostMediaCCC
}

func (a *MediaCCCAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	_, body, err := a.fetch.Page(ctx, req.Normalized)
	if err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: req.Normalized, Err: err}
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "parse page", Err: err}
	}

	title, err := extract.RequireAttr(doc, a.Host(), "meta[property='og:title']", "content")
	if err != nil {
		return nil, err
	}

	// og:url carries the talk path, not a full URL.
	path, err := extract.RequireAttr(doc, a.Host(), "meta[property='og:url']", "content")
	if err != nil {
		return nil, err
	}

	releaseDate, err := extract.RequireAttr(doc, a.Host(), "meta[property='og:video:release_date']", "content")
	if err != nil {
		return nil, err
	}
	year, ok := extract.YearOf(releaseDate)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "og:video:release_date"}
	}

	// Talks list one author meta tag per speaker.
	authors := extract.JoinAttrs(doc, "meta[property='author']", "content")

	return &domain.Record{
		Title:   title,
		Channel: authors,
		Year:    year,
		URL:     "https://media.ccc.de" + path,
	}, nil
}

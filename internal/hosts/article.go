package hosts

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

// authorLookup reads an author name from a parsed article page. Returning
// false means no author, which is a declared fallback for these publishers,
// not an error: the channel then stays the bare site name.
type authorLookup func(doc *goquery.Document) (string, bool)

// ArticleAdapter is the selector-based adapter shared by publisher sites
// that expose their metadata through OpenGraph and article meta tags.
// The author source is the only per-publisher difference.
type ArticleAdapter struct {
	host   domain.Host
	fetch  *fetch.Client
	author authorLookup
}

// NewBelltowerAdapter creates the belltower.news adapter. The author is
// enriched from the page's JSON-LD block when one is present.
func NewBelltowerAdapter(f *fetch.Client) *ArticleAdapter {
	return &ArticleAdapter{host: domain.HostBelltower, fetch: f, author: jsonLDAuthor}
}

// NewVolksverpetzerAdapter creates the volksverpetzer.de adapter.
func NewVolksverpetzerAdapter(f *fetch.Client) *ArticleAdapter {
	return &ArticleAdapter{host: domain.HostVolksverpetzer, fetch: f, author: metaAuthor}
}

// NewNetzpolitikAdapter creates the netzpolitik.org adapter.
func NewNetzpolitikAdapter(f *fetch.Client) *ArticleAdapter {
	return &ArticleAdapter{host: domain.HostNetzpolitik, fetch: f, author: metaAuthor}
}

func (a *ArticleAdapter) Host() domain.Host {
	return a.host
}

func (a *ArticleAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	_, body, err := a.fetch.Page(ctx, req.Normalized)
	if err != nil {
		return nil, &domain.UpstreamError{Host: a.host, URL: req.Normalized, Err: err}
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, &domain.ExtractionError{Host: a.host, Stage: "parse page", Err: err}
	}

	title, err := extract.RequireAttr(doc, a.host, "meta[property='og:title']", "content")
	if err != nil {
		return nil, err
	}

	published, err := extract.RequireAttr(doc, a.host, "meta[property='article:published_time']", "content")
	if err != nil {
		return nil, err
	}
	year, ok := extract.YearOf(published)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.host, Field: "article:published_time"}
	}

	canonical, err := extract.RequireAttr(doc, a.host, "link[rel='canonical']", "href")
	if err != nil {
		return nil, err
	}

	siteName, err := extract.RequireAttr(doc, a.host, "meta[property='og:site_name']", "content")
	if err != nil {
		return nil, err
	}

	author, _ := a.author(doc)

	return &domain.Record{
		Title:   title,
		Channel: extract.ComposeChannel(author, siteName),
		Year:    year,
		URL:     canonical,
	}, nil
}

// metaAuthor reads the author from the standard author meta tag.
func metaAuthor(doc *goquery.Document) (string, bool) {
	return extract.OptionalAttr(doc, "meta[name='author']", "content")
}

// jsonLDAuthor reads the author from the last @graph node of the page's
// JSON-LD block, where belltower.news keeps its article payload.
func jsonLDAuthor(doc *goquery.Document) (string, bool) {
	v, ok := extract.JSONLD(doc)
	if !ok {
		return "", false
	}
	node, ok := extract.GraphNode(v, true)
	if !ok {
		return "", false
	}
	return extract.AuthorName(node)
}

package hosts

import (
	"context"
	"strings"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

// TwitchAdapter resolves Twitch VODs from the page's meta tags.
type TwitchAdapter struct {
	fetch *fetch.Client
}

// NewTwitchAdapter creates the Twitch adapter.
func NewTwitchAdapter(f *fetch.Client) *TwitchAdapter {
	return &TwitchAdapter{fetch: f}
}

func (a *TwitchAdapter) Host() domain.Host {
	return domain.HostTwitch
}

func (a *TwitchAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	_, body, err := a.fetch.Page(ctx, req.Normalized)
	if err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: req.Normalized, Err: err}
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "parse page", Err: err}
	}

	ogTitle, err := extract.RequireAttr(doc, a.Host(), "meta[property='og:title']", "content")
	if err != nil {
		return nil, err
	}

	description, err := extract.RequireAttr(doc, a.Host(), "meta[property='og:description']", "content")
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

	canonical, err := extract.RequireAttr(doc, a.Host(), "link[rel='canonical']", "href")
	if err != nil {
		return nil, err
	}

	return &domain.Record{
		Title:   trimTitleSuffix(ogTitle),
		Channel: firstWord(description),
		Year:    year,
		URL:     canonical,
	}, nil
}

// trimTitleSuffix drops the streamer suffix Twitch appends after the last
// dash of the og:title.
func trimTitleSuffix(title string) string {
	if i := strings.LastIndex(title, "-"); i >= 0 {
		return strings.TrimSpace(title[:i])
	}
	return strings.TrimSpace(title)
}

// firstWord returns the leading word of the og:description, which names the
// broadcasting channel.
func firstWord(s string) string {
	if i := strings.Index(s, " "); i >= 0 {
		return s[:i]
	}
	return s
}

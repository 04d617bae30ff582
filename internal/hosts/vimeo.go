package hosts

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

const vimeoOEmbedBase = "https://vimeo.com/api/oembed.json"

// VimeoAdapter resolves Vimeo videos through the unauthenticated oEmbed API.
type VimeoAdapter struct {
	fetch    *fetch.Client
	endpoint string
}

// NewVimeoAdapter creates the Vimeo adapter.
func NewVimeoAdapter(f *fetch.Client) *VimeoAdapter {
	return &VimeoAdapter{fetch: f, endpoint: vimeoOEmbedBase}
}

// WithEndpoint points the adapter at a different oEmbed URL.
func (a *VimeoAdapter) WithEndpoint(endpoint string) *VimeoAdapter {
	a.endpoint = endpoint
	return a
}

func (a *VimeoAdapter) Host() domain.Host {
	return domain.HostVimeo
}

type vimeoResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	UploadDate string `json:"upload_date"`
}

func (a *VimeoAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	videoID := lastPathSegment(req.Link)
	if videoID == "" {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "video id"}
	}

	apiURL := fmt.Sprintf("%s?url=%s", a.endpoint, url.QueryEscape("https://vimeo.com/"+videoID))

	var resp vimeoResponse
	if err := a.fetch.GetJSON(ctx, apiURL, &resp); err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: apiURL, Err: err}
	}

	if resp.Title == "" {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "title"}
	}

	year, ok := extract.YearOf(resp.UploadDate)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "upload_date"}
	}

	return &domain.Record{
		Title:   resp.Title,
		Channel: resp.AuthorName,
		Year:    year,
		URL:     "https://www.vimeo.com/" + videoID,
	}, nil
}

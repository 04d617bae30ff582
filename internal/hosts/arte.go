package hosts

import (
	"context"
	"regexp"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

const arteAPIBase = "https://api.arte.tv/api/player/v2/config/de"

// artePattern extracts the platform video id from the URL path.
var artePattern = regexp.MustCompile(`videos/(?P<arte_id>[\w-]+)/`)

// ArteAdapter resolves Arte videos through the player config API.
type ArteAdapter struct {
	fetch    *fetch.Client
	endpoint string
}

// NewArteAdapter creates the Arte adapter.
func NewArteAdapter(f *fetch.Client) *ArteAdapter {
	return &ArteAdapter{fetch: f, endpoint: arteAPIBase}
}

// WithEndpoint points the adapter at a different API base URL.
func (a *ArteAdapter) WithEndpoint(endpoint string) *ArteAdapter {
	a.endpoint = endpoint
	return a
}

func (a *ArteAdapter) Host() domain.Host {
	return domain.HostArte
}

type arteResponse struct {
	Data struct {
		Attributes struct {
			Provider string `json:"provider"`
			Metadata struct {
				Title    string `json:"title"`
				Subtitle string `json:"subtitle"`
				Link     struct {
					URL string `json:"url"`
				} `json:"link"`
			} `json:"metadata"`
			Rights struct {
				Begin string `json:"begin"`
			} `json:"rights"`
		} `json:"attributes"`
	} `json:"data"`
}

func (a *ArteAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	m := artePattern.FindStringSubmatch(req.Link)
	if m == nil {
		// Not every arte.tv link carries a video id; this is an explicit
		// can't-extract outcome, not a crash.
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "video id"}
	}
	arteID := m[artePattern.SubexpIndex("arte_id")]

	apiURL := a.endpoint + "/" + arteID

	var resp arteResponse
	if err := a.fetch.GetJSON(ctx, apiURL, &resp); err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: apiURL, Err: err}
	}

	attrs := resp.Data.Attributes
	if attrs.Metadata.Title == "" {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "data.attributes.metadata.title"}
	}

	title := attrs.Metadata.Title
	if attrs.Metadata.Subtitle != "" {
		title = title + " – " + attrs.Metadata.Subtitle
	}

	year, ok := extract.YearOf(attrs.Rights.Begin)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "data.attributes.rights.begin"}
	}

	return &domain.Record{
		Title:   title,
		Channel: attrs.Provider,
		Year:    year,
		URL:     attrs.Metadata.Link.URL,
	}, nil
}

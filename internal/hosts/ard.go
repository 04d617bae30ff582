package hosts

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
)

const ardAPIBase = "https://api.ardmediathek.de"

// ARDAdapter resolves ARD Mediathek videos through the page-gateway API.
type ARDAdapter struct {
	fetch    *fetch.Client
	endpoint string
}

// NewARDAdapter creates the ARD adapter.
func NewARDAdapter(f *fetch.Client) *ARDAdapter {
	return &ARDAdapter{fetch: f, endpoint: ardAPIBase}
}

// WithEndpoint points the adapter at a different API base URL.
func (a *ARDAdapter) WithEndpoint(endpoint string) *ARDAdapter {
	a.endpoint = endpoint
	return a
}

func (a *ARDAdapter) Host() domain.Host {
	return domain.HostARD
}

type ardResponse struct {
	Title    string `json:"title"`
	Tracking struct {
		AtiCustomVars struct {
			Channel string `json:"channel"`
		} `json:"atiCustomVars"`
	} `json:"tracking"`
	Widgets []struct {
		BroadcastedOn string `json:"broadcastedOn"`
	} `json:"widgets"`
}

func (a *ARDAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	videoID := lastPathSegment(req.Link)
	if videoID == "" {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "video id"}
	}

	apiURL := fmt.Sprintf("%s/page-gateway/pages/ard/item/%s?embedded=false&mcV6=true", a.endpoint, videoID)

	var resp ardResponse
	if err := a.fetch.GetJSON(ctx, apiURL, &resp); err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: apiURL, Err: err}
	}

	if resp.Title == "" {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "title"}
	}

	// Channel and year are enrichment only: the nested keys are frequently
	// absent and the adapter declares fallbacks instead of failing.
	channel := resp.Tracking.AtiCustomVars.Channel
	if channel == "" {
		channel = "ARD"
	}

	year := ""
	if len(resp.Widgets) > 0 {
		year, _ = extract.YearOf(resp.Widgets[0].BroadcastedOn)
	}

	return &domain.Record{
		Title:   resp.Title,
		Channel: channel,
		Year:    year,
		URL:     "https://www.ardmediathek.de/video/" + videoID,
	}, nil
}

// lastPathSegment returns the final segment of the URL path, ignoring a
// trailing slash.
func lastPathSegment(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}
	path := strings.TrimSuffix(parsed.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

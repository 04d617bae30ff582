package hosts

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
	"github.com/jonesrussell/linkmeta/internal/links"
)

const youtubeAPIBase = "https://youtube.googleapis.com/youtube/v3/videos"

// YouTubeAdapter resolves YouTube videos through the Data API v3.
type YouTubeAdapter struct {
	fetch    *fetch.Client
	apiKey   string
	endpoint string
}

// NewYouTubeAdapter creates the YouTube adapter. The API key comes from
// configuration; endpoint overrides are for tests.
func NewYouTubeAdapter(f *fetch.Client, apiKey string) *YouTubeAdapter {
	return &YouTubeAdapter{fetch: f, apiKey: apiKey, endpoint: youtubeAPIBase}
}

// WithEndpoint points the adapter at a different API base URL.
func (a *YouTubeAdapter) WithEndpoint(endpoint string) *YouTubeAdapter {
	a.endpoint = endpoint
	return a
}

func (a *YouTubeAdapter) Host() domain.Host {
	return domain.HostYouTube
}

type youtubeResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

func (a *YouTubeAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	videoID := links.YouTubeVideoID(req.Link)
	if videoID == "" {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "video id"}
	}

	apiURL := fmt.Sprintf("%s?part=snippet%%2CcontentDetails&id=%s&key=%s",
		a.endpoint, url.QueryEscape(videoID), url.QueryEscape(a.apiKey))

	var resp youtubeResponse
	if err := a.fetch.GetJSON(ctx, apiURL, &resp); err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: apiURL, Err: err}
	}

	if len(resp.Items) == 0 {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "items"}
	}

	item := resp.Items[0]
	if item.Snippet.Title == "" {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "items[0].snippet.title"}
	}

	year, ok := extract.YearOf(item.Snippet.PublishedAt)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "items[0].snippet.publishedAt"}
	}

	return &domain.Record{
		Title:   item.Snippet.Title,
		Channel: item.Snippet.ChannelTitle,
		Year:    year,
		URL:     "https://youtube.com/watch?v=" + item.ID,
	}, nil
}

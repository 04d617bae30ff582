package hosts

import (
	"context"
	"regexp"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/extract"
	"github.com/jonesrussell/linkmeta/internal/fetch"
	"github.com/jonesrussell/linkmeta/internal/logger"
)

const zdfGraphQLEndpoint = "https://api.zdf.de/graphql"

const zdfVideoQuery = `
    query VideoByCanonical($canonical: String!) {
        videoByCanonical(canonical: $canonical) {
        title
        editorialDate
        sharingUrl
        }
    }
`

// zdfTokenPattern finds the api token embedded in the page source. The token
// sits inside escaped JSON, so the pattern matches against the raw bytes, not
// the parse tree. Undocumented upstream behavior; see the fallback token.
var zdfTokenPattern = regexp.MustCompile(`apiToken\\":\\"(\w+)\\"`)

// ZDFAdapter resolves ZDF Mediathek videos: first the HTML page for the
// canonical URL and the embedded api token, then the GraphQL API for the
// metadata. The two calls are strictly ordered.
type ZDFAdapter struct {
	fetch         *fetch.Client
	logger        logger.Logger
	fallbackToken string
	endpoint      string
}

// NewZDFAdapter creates the ZDF adapter. fallbackToken is used when the page
// source no longer embeds a token.
func NewZDFAdapter(f *fetch.Client, log logger.Logger, fallbackToken string) *ZDFAdapter {
	return &ZDFAdapter{fetch: f, logger: log, fallbackToken: fallbackToken, endpoint: zdfGraphQLEndpoint}
}

// WithEndpoint points the adapter at a different GraphQL URL.
func (a *ZDFAdapter) WithEndpoint(endpoint string) *ZDFAdapter {
	a.endpoint = endpoint
	return a
}

func (a *ZDFAdapter) Host() domain.Host {
	return domain.HostZDF
}

type zdfGraphQLRequest struct {
	OperationName string            `json:"operationName"`
	Query         string            `json:"query"`
	Variables     map[string]string `json:"variables"`
}

type zdfGraphQLResponse struct {
	Data struct {
		VideoByCanonical *struct {
			Title         string `json:"title"`
			EditorialDate string `json:"editorialDate"`
			SharingURL    string `json:"sharingUrl"`
		} `json:"videoByCanonical"`
	} `json:"data"`
}

func (a *ZDFAdapter) Resolve(ctx context.Context, req Request) (*domain.Record, error) {
	_, body, err := a.fetch.Page(ctx, req.Link)
	if err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: req.Link, Err: err}
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "parse page", Err: err}
	}

	canonical, err := extract.RequireAttr(doc, a.Host(), "link[rel='canonical']", "href")
	if err != nil {
		return nil, err
	}
	canonicalID := lastPathSegment(canonical)

	token := a.apiToken(body)

	headers := map[string]string{
		"Referer":  "https://www.zdf.de",
		"Origin":   "https://www.zdf.de",
		"Api-Auth": "Bearer " + token,
	}
	payload := zdfGraphQLRequest{
		OperationName: "VideoByCanonical",
		Query:         zdfVideoQuery,
		Variables:     map[string]string{"canonical": canonicalID},
	}

	var resp zdfGraphQLResponse
	if err := a.fetch.PostJSON(ctx, a.endpoint, headers, payload, &resp); err != nil {
		return nil, &domain.UpstreamError{Host: a.Host(), URL: a.endpoint, Err: err}
	}

	meta := resp.Data.VideoByCanonical
	if meta == nil {
		return nil, &domain.ExtractionError{Host: a.Host(), Stage: "videoByCanonical"}
	}
	if meta.Title == "" {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "videoByCanonical.title"}
	}

	year, ok := extract.YearOf(meta.EditorialDate)
	if !ok {
		return nil, &domain.MissingFieldError{Host: a.Host(), Field: "videoByCanonical.editorialDate"}
	}

	return &domain.Record{
		Title:   meta.Title,
		Channel: "ZDF",
		Year:    year,
		URL:     meta.SharingURL,
	}, nil
}

// apiToken extracts the api token from the raw page source, falling back to
// the configured token when the pattern is not found.
func (a *ZDFAdapter) apiToken(pageSource []byte) string {
	if m := zdfTokenPattern.FindSubmatch(pageSource); m != nil {
		a.logger.Debug("Extracted ZDF api token from page source")
		return string(m[1])
	}
	a.logger.Warn("No api token in ZDF page source, using fallback")
	return a.fallbackToken
}

package hosts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/linkmeta/internal/domain"
)

func TestYouTubeAdapter_Resolve(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"id": "abc123",
				"snippet": {
					"title": "T",
					"publishedAt": "2020-05-01T00:00:00Z",
					"channelTitle": "C"
				}
			}]
		}`))
	}))
	defer ts.Close()

	a := NewYouTubeAdapter(newTestClient(), "test-key").WithEndpoint(ts.URL)

	rec, err := a.Resolve(context.Background(), Request{Link: "https://www.youtu.be/abc123"})
	require.NoError(t, err)

	assert.Equal(t, &domain.Record{
		Title:   "T",
		Channel: "C",
		Year:    "2020",
		URL:     "https://youtube.com/watch?v=abc123",
	}, rec)

	assert.Equal(t, []string{"abc123"}, gotQuery["id"])
	assert.Equal(t, []string{"test-key"}, gotQuery["key"])
	assert.Equal(t, []string{"snippet,contentDetails"}, gotQuery["part"])
}

func TestYouTubeAdapter_NoItems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer ts.Close()

	a := NewYouTubeAdapter(newTestClient(), "test-key").WithEndpoint(ts.URL)

	_, err := a.Resolve(context.Background(), Request{Link: "https://youtu.be/missing"})
	require.Error(t, err)

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, domain.HostYouTube, missing.Host)
	assert.Equal(t, "items", missing.Field)
}

func TestYouTubeAdapter_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	a := NewYouTubeAdapter(newTestClient(), "bad-key").WithEndpoint(ts.URL)

	_, err := a.Resolve(context.Background(), Request{Link: "https://youtu.be/abc123"})
	require.Error(t, err)

	var upstream *domain.UpstreamError
	assert.True(t, errors.As(err, &upstream))
}

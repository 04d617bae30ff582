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

func TestVimeoAdapter_Resolve(t *testing.T) {
	var gotURL string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		_, _ = w.Write([]byte(`{
			"title": "A Short Film",
			"author_name": "Some Studio",
			"upload_date": "2019-11-03 14:00:00"
		}`))
	}))
	defer ts.Close()

	a := NewVimeoAdapter(newTestClient()).WithEndpoint(ts.URL)

	rec, err := a.Resolve(context.Background(), Request{Link: "https://vimeo.com/123456789"})
	require.NoError(t, err)

	assert.Equal(t, &domain.Record{
		Title:   "A Short Film",
		Channel: "Some Studio",
		Year:    "2019",
		URL:     "https://www.vimeo.com/123456789",
	}, rec)
	assert.Equal(t, "https://vimeo.com/123456789", gotURL)
}

func TestVimeoAdapter_MissingTitle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"author_name": "x", "upload_date": "2019-01-01"}`))
	}))
	defer ts.Close()

	a := NewVimeoAdapter(newTestClient()).WithEndpoint(ts.URL)

	_, err := a.Resolve(context.Background(), Request{Link: "https://vimeo.com/123456789"})
	require.Error(t, err)

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "title", missing.Field)
}

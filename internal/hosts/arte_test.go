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

func TestArteAdapter_Resolve(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"data": {
				"attributes": {
					"provider": "ARTE",
					"metadata": {
						"title": "Karambolage",
						"subtitle": "Folge 12",
						"link": {"url": "https://www.arte.tv/de/videos/110342-012-A/karambolage/"}
					},
					"rights": {"begin": "2023-06-11T18:00:00Z"}
				}
			}
		}`))
	}))
	defer ts.Close()

	a := NewArteAdapter(newTestClient()).WithEndpoint(ts.URL)

	rec, err := a.Resolve(context.Background(), Request{
		Link: "https://www.arte.tv/de/videos/110342-012-A/karambolage/",
	})
	require.NoError(t, err)

	assert.Equal(t, &domain.Record{
		Title:   "Karambolage – Folge 12",
		Channel: "ARTE",
		Year:    "2023",
		URL:     "https://www.arte.tv/de/videos/110342-012-A/karambolage/",
	}, rec)
	assert.Equal(t, "/110342-012-A", gotPath)
}

func TestArteAdapter_NoSubtitle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"attributes": {
					"provider": "ARTE",
					"metadata": {"title": "Karambolage", "link": {"url": "https://www.arte.tv/x"}},
					"rights": {"begin": "2023-06-11"}
				}
			}
		}`))
	}))
	defer ts.Close()

	a := NewArteAdapter(newTestClient()).WithEndpoint(ts.URL)

	rec, err := a.Resolve(context.Background(), Request{
		Link: "https://www.arte.tv/de/videos/110342-012-A/karambolage/",
	})
	require.NoError(t, err)
	assert.Equal(t, "Karambolage", rec.Title)
}

// Overview pages carry no video id in their path; that is a can't-extract
// outcome, not a panic.
func TestArteAdapter_NoVideoID(t *testing.T) {
	a := NewArteAdapter(newTestClient())

	_, err := a.Resolve(context.Background(), Request{Link: "https://www.arte.tv/de/"})
	require.Error(t, err)

	var extraction *domain.ExtractionError
	require.True(t, errors.As(err, &extraction))
	assert.Equal(t, "video id", extraction.Stage)
}

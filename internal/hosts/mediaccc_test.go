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

const mediacccPage = `<html><head>
<meta property="og:title" content="A Talk About Things"/>
<meta property="og:url" content="/v/38c3-a-talk-about-things"/>
<meta property="og:video:release_date" content="2024-12-28"/>
<meta property="author" content="alice"/>
<meta property="author" content="bob"/>
</head><body></body></html>`

func TestMediaCCCAdapter_Resolve(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(mediacccPage))
	}))
	defer ts.Close()

	a := NewMediaCCCAdapter(newTestClient())

	rec, err := a.Resolve(context.Background(), Request{Normalized: ts.URL + "/v/38c3-a-talk-about-things"})
	require.NoError(t, err)

	assert.Equal(t, &domain.Record{
		Title:   "A Talk About Things",
		Channel: "alice, bob",
		Year:    "2024",
		URL:     "https://media.ccc.de/v/38c3-a-talk-about-things",
	}, rec)
}

func TestMediaCCCAdapter_MissingReleaseDate(t *testing.T) {
	page := `<html><head>
<meta property="og:title" content="A Talk"/>
<meta property="og:url" content="/v/a-talk"/>
</head></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()

	a := NewMediaCCCAdapter(newTestClient())

	_, err := a.Resolve(context.Background(), Request{Normalized: ts.URL + "/v/a-talk"})
	require.Error(t, err)

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, domain.HostMediaCCC, missing.Host)
}

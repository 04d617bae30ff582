package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/hosts"
	"github.com/jonesrussell/linkmeta/internal/logger"
	"github.com/jonesrussell/linkmeta/internal/metrics"
	"github.com/jonesrussell/linkmeta/internal/resolver"
)

type fakeAdapter struct {
	host    domain.Host
	record  *domain.Record
	err     error
	gotReq  hosts.Request
	invoked bool
}

func (f *fakeAdapter) Host() domain.Host { return f.host }

func (f *fakeAdapter) Resolve(_ context.Context, req hosts.Request) (*domain.Record, error) {
	f.invoked = true
	f.gotReq = req
	return f.record, f.err
}

func TestResolver_Resolve(t *testing.T) {
	want := &domain.Record{Title: "T", Channel: "ZDF", Year: "2022", URL: "https://www.zdf.de/video/x"}
	fake := &fakeAdapter{host: domain.HostZDF, record: want}

	r := resolver.New(hosts.NewRegistry(fake), logger.NewNopLogger(), nil)

	rec, err := r.Resolve(context.Background(), "https://www.zdf.de/video/x?t=1")
	require.NoError(t, err)
	assert.Equal(t, want, rec)

	// the adapter sees both the original and the normalized link
	assert.Equal(t, "https://www.zdf.de/video/x?t=1", fake.gotReq.Link)
	assert.Equal(t, "https://www.zdf.de/video/x?t=1", fake.gotReq.Normalized)
}

func TestResolver_NormalizedLinkReachesAdapter(t *testing.T) {
	fake := &fakeAdapter{host: domain.HostTwitch, record: &domain.Record{Title: "T"}}

	r := resolver.New(hosts.NewRegistry(fake), logger.NewNopLogger(), nil)

	_, err := r.Resolve(context.Background(), "https://www.twitch.tv/videos/1?t=1h")
	require.NoError(t, err)
	assert.Equal(t, "https://www.twitch.tv/videos/1?t=1h", fake.gotReq.Link)
	assert.Equal(t, "https://www.twitch.tv/videos/1", fake.gotReq.Normalized)
}

func TestResolver_UnsupportedLink(t *testing.T) {
	fake := &fakeAdapter{host: domain.HostZDF}
	r := resolver.New(hosts.NewRegistry(fake), logger.NewNopLogger(), nil)

	_, err := r.Resolve(context.Background(), "https://example.com/video")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedHost)
	assert.False(t, fake.invoked)
}

// A classified host without a registered adapter surfaces like an
// unsupported link.
func TestResolver_NoAdapterRegistered(t *testing.T) {
	r := resolver.New(hosts.NewRegistry(), logger.NewNopLogger(), nil)

	_, err := r.Resolve(context.Background(), "https://www.zdf.de/video/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedHost)
}

func TestResolver_AdapterErrorPassesThrough(t *testing.T) {
	wantErr := &domain.MissingFieldError{Host: domain.HostVimeo, Field: "title"}
	fake := &fakeAdapter{host: domain.HostVimeo, err: wantErr}

	r := resolver.New(hosts.NewRegistry(fake), logger.NewNopLogger(), nil)

	_, err := r.Resolve(context.Background(), "https://vimeo.com/1")
	require.Error(t, err)

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "title", missing.Field)
}

func TestResolver_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	fake := &fakeAdapter{host: domain.HostVimeo, record: &domain.Record{Title: "T"}}
	r := resolver.New(hosts.NewRegistry(fake), logger.NewNopLogger(), m)

	_, err := r.Resolve(context.Background(), "https://vimeo.com/1")
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), "https://example.com/x")
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.Resolutions().WithLabelValues("vimeo", metrics.OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.Resolutions().WithLabelValues("none", metrics.OutcomeUnsupported)))
}

package bootstrap

import (
	"github.com/jonesrussell/linkmeta/internal/config"
	"github.com/jonesrussell/linkmeta/internal/fetch"
	"github.com/jonesrussell/linkmeta/internal/hosts"
	"github.com/jonesrussell/linkmeta/internal/logger"
)

// BuildRegistry assembles the closed adapter registry. All adapters share
// one fetch client; the set of hosts is fixed at build time.
func BuildRegistry(cfg *config.Config, log logger.Logger) *hosts.Registry {
	client := fetch.NewClient(fetch.Config{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
	}, log)

	return hosts.NewRegistry(
		hosts.NewYouTubeAdapter(client, cfg.YouTube.APIKey),
		hosts.NewARDAdapter(client),
		hosts.NewZDFAdapter(client, log, cfg.ZDF.FallbackToken),
		hosts.NewVimeoAdapter(client),
		hosts.NewArteAdapter(client),
		hosts.NewMediaCCCAdapter(client),
		hosts.NewTwitchAdapter(client),
		hosts.NewBelltowerAdapter(client),
		hosts.NewVolksverpetzerAdapter(client),
		hosts.NewNetzpolitikAdapter(client),
		hosts.NewGEOAdapter(client),
		hosts.NewSueddeutscheAdapter(client),
		hosts.NewFreitagAdapter(client),
		hosts.NewNatGeoAdapter(client),
		hosts.NewSubstackAdapter(client),
	)
}

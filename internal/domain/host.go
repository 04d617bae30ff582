// Package domain contains the core types shared across the linkmeta service.
package domain

// Host identifies a recognized platform or publisher. The set is closed at
// build time; adding a platform means adding a constant here, a classification
// rule in internal/links, and an adapter in internal/hosts.
type Host string

const (
	HostYouTube        Host = "youtube"
	HostARD            Host = "ard"
	HostZDF            Host = "zdf"
	HostVimeo          Host = "vimeo"
	HostMediaCCC       Host = "media.ccc.de"
	HostTwitch         Host = "twitch"
	HostArte           Host = "arte"
	HostBelltower      Host = "belltower"
	HostVolksverpetzer Host = "volksverpetzer"
	HostGEO            Host = "geo"
	HostSueddeutsche   Host = "sueddeutsche"
	HostFreitag        Host = "freitag"
	HostNetzpolitik    Host = "netzpolitik"
	HostNatGeo         Host = "nationalgeographic"
	HostSubstack       Host = "substack"
)

// String returns the host name used in logs and metric labels.
func (h Host) String() string {
	return string(h)
}

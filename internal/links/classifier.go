// Package links implements the link classifier: a pure mapping from a raw
// link string to a normalized link and the host it belongs to. No I/O.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jonesrussell/linkmeta/internal/domain"
)

// rule is one classification entry. Rules are evaluated in declaration order,
// first match wins, so more specific patterns must come before patterns they
// contain (nationalgeographic.de contains "geo.de/").
type rule struct {
	host      domain.Host
	pattern   string
	normalize func(link string) string
}

var rules = []rule{
	{domain.HostZDF, "zdf", passThrough},
	{domain.HostARD, "ard", passThrough},
	{domain.HostVimeo, "vimeo", passThrough},
	{domain.HostMediaCCC, "media.ccc.de", stripFragment},
	{domain.HostTwitch, "twitch.tv/video", stripQuery},
	{domain.HostArte, "arte.tv", stripQuery},
	{domain.HostBelltower, "belltower.news/", stripQuery},
	{domain.HostVolksverpetzer, "volksverpetzer.de/", stripQuery},
	{domain.HostNatGeo, "nationalgeographic.", stripQuery},
	{domain.HostGEO, "geo.de/", stripQuery},
	{domain.HostSueddeutsche, "sueddeutsche.de/", stripQuery},
	{domain.HostFreitag, "freitag.de/", stripQuery},
	{domain.HostNetzpolitik, "netzpolitik.org/", stripQuery},
	{domain.HostSubstack, "substack.com/", stripQuery},
}

// Classify maps a raw link to its normalized form and host. The second return
// value is false when no rule matches; that is the expected outcome for
// unsupported platforms, not an error. Classification is deterministic: the
// same input always yields the same result.
func Classify(link string) (domain.Classification, bool) {
	lower := strings.ToLower(link)

	// YouTube links survive creative dot placement; the check runs against
	// the link with all dots removed.
	if strings.Contains(strings.ReplaceAll(lower, ".", ""), "youtube") {
		return domain.Classification{
			Link: fmt.Sprintf("https://www.youtube.com/watch?v=%s", YouTubeVideoID(link)),
			Host: domain.HostYouTube,
		}, true
	}

	for _, r := range rules {
		if strings.Contains(lower, r.pattern) {
			return domain.Classification{Link: r.normalize(link), Host: r.host}, true
		}
	}

	return domain.Classification{}, false
}

// YouTubeVideoID extracts the video id from any of the recognized YouTube
// link forms: /watch URLs carry it in the v query parameter, youtu.be short
// links in the path, and anything else is treated as a raw video id.
func YouTubeVideoID(link string) string {
	lower := strings.ToLower(link)

	if strings.Contains(lower, "youtube.com/watch") {
		if parsed, err := url.Parse(link); err == nil {
			return parsed.Query().Get("v")
		}
		return ""
	}

	if strings.Contains(lower, "youtu.be") {
		if parsed, err := url.Parse(link); err == nil {
			return strings.TrimPrefix(parsed.Path, "/")
		}
		return ""
	}

	return link
}

func passThrough(link string) string {
	return link
}

func stripQuery(link string) string {
	if i := strings.Index(link, "?"); i >= 0 {
		return link[:i]
	}
	return link
}

func stripFragment(link string) string {
	if i := strings.Index(link, "#"); i >= 0 {
		return link[:i]
	}
	return link
}

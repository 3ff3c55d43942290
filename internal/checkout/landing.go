package checkout

import (
	"net/url"
	"strings"
)

// LandingFromURL derives the landing key from the referring page URL by
// taking the path segment immediately after a literal "landings" segment.
// Returns "" when the URL has no such segment or cannot be parsed.
func LandingFromURL(pageURL string) string {
	if pageURL == "" {
		return ""
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	for i, s := range segments {
		if s == "landings" && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}

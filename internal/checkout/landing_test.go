package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandingFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"segment after landings", "https://site.example/landings/lp-01/index.html", "lp-01"},
		{"landings at root", "https://site.example/landings/lp-003sl", "lp-003sl"},
		{"query ignored", "https://site.example/landings/lp-01/?utm_source=x", "lp-01"},
		{"no landings segment", "https://site.example/shop/lp-01", ""},
		{"landings is last segment", "https://site.example/landings", ""},
		{"empty url", "", ""},
		{"bare path", "/landings/lp-02/order", "lp-02"},
		{"double slashes collapse", "https://site.example//landings//lp-01", "lp-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LandingFromURL(tc.url))
		})
	}
}

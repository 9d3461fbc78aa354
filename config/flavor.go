package config

import "fmt"

// Flavor selects which upstream server software the bridge talks to.
// The API surface is identical across flavors; only the public
// permalink path differs.
type Flavor string

const (
	FlavorMastodon   Flavor = "mastodon"
	FlavorPleroma    Flavor = "pleroma"
	FlavorGoToSocial Flavor = "gotosocial"
)

func ParseFlavor(s string) (Flavor, error) {
	switch Flavor(s) {
	case FlavorMastodon, FlavorPleroma, FlavorGoToSocial:
		return Flavor(s), nil
	}
	return "", fmt.Errorf("unknown upstream flavor %q", s)
}

// PermalinkURL builds the public web URL for a status on the configured
// upstream.
func (f Flavor) PermalinkURL(baseURL, username, statusID string) string {
	switch f {
	case FlavorPleroma:
		return fmt.Sprintf("%s/notice/%s", baseURL, statusID)
	case FlavorGoToSocial:
		return fmt.Sprintf("%s/@%s/statuses/%s", baseURL, username, statusID)
	default:
		return fmt.Sprintf("%s/@%s/%s", baseURL, username, statusID)
	}
}

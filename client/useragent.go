package client

import (
	"math/rand/v2"
	"slices"
)

// UserAgent is the identity a [Client] sends as its User-Agent header.
// A client keeps one for its whole lifetime so that any session affinity
// kept by the transport, such as cookies, stays consistent.
type UserAgent string

const (
	// Safari on macOS.
	Safari UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Version/17.0 Safari/537.36"
	// Chrome on macOS.
	Chrome UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	// Mobile Safari on iPhone.
	Mobile UserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

var userAgents = []UserAgent{Safari, Chrome, Mobile}

// UserAgents returns the built-in catalog.
func UserAgents() []UserAgent {
	return slices.Clone(userAgents)
}

// RandomUserAgent picks one entry from the catalog.
func RandomUserAgent() UserAgent {
	return userAgents[rand.IntN(len(userAgents))]
}

func (ua UserAgent) String() string {
	return string(ua)
}

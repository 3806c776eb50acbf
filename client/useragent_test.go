package client_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/yahoofinance/client"
)

func TestUserAgents(t *testing.T) {
	exp := []client.UserAgent{client.Safari, client.Chrome, client.Mobile}
	if diff := cmp.Diff(exp, client.UserAgents()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}

	got := client.UserAgents()
	got[0] = "mutated"
	if client.UserAgents()[0] != client.Safari {
		t.Error("catalog was mutated through the returned slice")
	}

	for _, ua := range exp {
		if !strings.HasPrefix(ua.String(), "Mozilla/5.0 (") {
			t.Errorf("unexpected user agent %q", ua)
		}
	}
}

func TestRandomUserAgent(t *testing.T) {
	catalog := client.UserAgents()

	for range 50 {
		if ua := client.RandomUserAgent(); !slices.Contains(catalog, ua) {
			t.Fatalf("random user agent %q not in catalog", ua)
		}
	}
}

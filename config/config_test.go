package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MASTODON_BASE_URL", "https://example.social")
	t.Setenv("MASTODON_ACCOUNT_ID", "42")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if s.Flavor != FlavorMastodon {
		t.Errorf("Flavor = %q, want mastodon default", s.Flavor)
	}
	if s.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", s.RequestTimeout)
	}
	if s.DefaultPageSize != 50 || s.MaxPageSize != 100 {
		t.Errorf("page sizes = %d/%d, want 50/100", s.DefaultPageSize, s.MaxPageSize)
	}
	if s.UpstreamPageLimit != 40 {
		t.Errorf("UpstreamPageLimit = %d, want the Mastodon per-page maximum 40", s.UpstreamPageLimit)
	}
	if s.MaxPages != 5 {
		t.Errorf("MaxPages = %d, want 5", s.MaxPages)
	}
	if s.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", s.CacheTTL)
	}
	if !s.ExcludeReplies || !s.ExcludeReblogs {
		t.Errorf("exclusions = %v/%v, want both true", s.ExcludeReplies, s.ExcludeReblogs)
	}
	if s.Port != "8080" {
		t.Errorf("Port = %q, want 8080", s.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MASTODON_BASE_URL", "https://example.social")
	t.Setenv("MASTODON_ACCOUNT_ID", "42")
	t.Setenv("MASTODON_ACCESS_TOKEN", "tok")
	t.Setenv("UPSTREAM_FLAVOR", "pleroma")
	t.Setenv("REQUEST_TIMEOUT", "30")
	t.Setenv("MAX_PAGES", "2")
	t.Setenv("EXCLUDE_REPLIES", "false")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if s.AccessToken != "tok" {
		t.Errorf("AccessToken = %q", s.AccessToken)
	}
	if s.Flavor != FlavorPleroma {
		t.Errorf("Flavor = %q, want pleroma", s.Flavor)
	}
	if s.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want bare-integer seconds", s.RequestTimeout)
	}
	if s.MaxPages != 2 {
		t.Errorf("MaxPages = %d, want 2", s.MaxPages)
	}
	if s.ExcludeReplies {
		t.Error("ExcludeReplies = true, want false")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing base url", map[string]string{"MASTODON_ACCOUNT_ID": "42"}},
		{"bad base url", map[string]string{"MASTODON_BASE_URL": "not a url", "MASTODON_ACCOUNT_ID": "42"}},
		{"missing account id", map[string]string{"MASTODON_BASE_URL": "https://example.social"}},
		{"unknown flavor", map[string]string{
			"MASTODON_BASE_URL":   "https://example.social",
			"MASTODON_ACCOUNT_ID": "42",
			"UPSTREAM_FLAVOR":     "diaspora",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, val := range tt.env {
				t.Setenv(key, val)
			}
			if _, err := Load(); err == nil {
				t.Error("Load = nil error, want failure")
			}
		})
	}
}

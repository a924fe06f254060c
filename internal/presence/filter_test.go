package presence

import (
	"errors"
	"testing"

	"github.com/genricoloni/mprisence/internal/domain"
)

func TestFilter_Check(t *testing.T) {
	musicURL := domain.StringPtr("https://music.example/x")
	otherURL := domain.StringPtr("https://other.example/x")

	tests := []struct {
		name   string
		cfg    domain.FilterConfig
		snap   domain.Snapshot
		reason domain.RejectReason // empty means accepted
	}{
		{
			name: "Whitelist - matching url accepted",
			cfg:  domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"music"}},
			snap: domain.Snapshot{URL: musicURL},
		},
		{
			name:   "Whitelist - other url rejected",
			cfg:    domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"music"}},
			snap:   domain.Snapshot{URL: otherURL},
			reason: domain.ReasonNotWhitelisted,
		},
		{
			name:   "Whitelist - match is case-sensitive",
			cfg:    domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"MUSIC"}},
			snap:   domain.Snapshot{URL: musicURL},
			reason: domain.ReasonNotWhitelisted,
		},
		{
			name:   "Whitelist - empty list rejects everything",
			cfg:    domain.FilterConfig{UseWhitelist: true},
			snap:   domain.Snapshot{URL: musicURL},
			reason: domain.ReasonNotWhitelisted,
		},
		{
			name: "Whitelist - any keyword is enough",
			cfg:  domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"youtube", "other"}},
			snap: domain.Snapshot{URL: otherURL},
		},
		{
			name:   "Whitelist - missing url rejected",
			cfg:    domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"music"}},
			snap:   domain.Snapshot{},
			reason: domain.ReasonNoURL,
		},
		{
			name: "Whitelist - missing url allowed by play_no_url",
			cfg:  domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"music"}, PlayNoURL: true},
			snap: domain.Snapshot{},
		},
		{
			name:   "Whitelist - play_no_url does not rescue a bad url",
			cfg:    domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"music"}, PlayNoURL: true},
			snap:   domain.Snapshot{URL: otherURL},
			reason: domain.ReasonNotWhitelisted,
		},
		{
			name: "No whitelist - any url accepted",
			cfg:  domain.FilterConfig{},
			snap: domain.Snapshot{URL: otherURL},
		},
		{
			name:   "No whitelist - url still required",
			cfg:    domain.FilterConfig{},
			snap:   domain.Snapshot{},
			reason: domain.ReasonNoURL,
		},
		{
			name: "No whitelist - play_no_url accepts missing url",
			cfg:  domain.FilterConfig{PlayNoURL: true},
			snap: domain.Snapshot{},
		},
		{
			name: "Blacklist - clean artists accepted",
			cfg:  domain.FilterConfig{PlayNoURL: true, UseArtistBlacklist: true, ArtistKeywordBlacklist: []string{"Nickel"}},
			snap: domain.Snapshot{Artists: []string{"Queen", "David Bowie"}},
		},
		{
			name:   "Blacklist - substring of any artist rejects",
			cfg:    domain.FilterConfig{PlayNoURL: true, UseArtistBlacklist: true, ArtistKeywordBlacklist: []string{"x", "Nickel"}},
			snap:   domain.Snapshot{Artists: []string{"Queen", "Nickelback"}},
			reason: domain.ReasonBlacklistedArtist,
		},
		{
			name: "Blacklist - disabled ignores the list",
			cfg:  domain.FilterConfig{PlayNoURL: true, ArtistKeywordBlacklist: []string{"Nickel"}},
			snap: domain.Snapshot{Artists: []string{"Nickelback"}},
		},
		{
			name:   "Blacklist - checked after the url rules",
			cfg:    domain.FilterConfig{UseArtistBlacklist: true, ArtistKeywordBlacklist: []string{"Nickel"}},
			snap:   domain.Snapshot{Artists: []string{"Nickelback"}},
			reason: domain.ReasonNoURL,
		},
		{
			name:   "Playing snapshot is rejected as a whole",
			cfg:    domain.FilterConfig{UseWhitelist: true, KeywordWhitelist: []string{"music"}},
			snap:   domain.Snapshot{Status: domain.StatusPlaying, URL: otherURL, Title: domain.StringPtr("t")},
			reason: domain.ReasonNotWhitelisted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFilter(tt.cfg).Check(tt.snap)

			if tt.reason == "" {
				if err != nil {
					t.Fatalf("Expected snapshot to be accepted, got %v", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrFilterRejected) {
				t.Fatalf("Expected ErrFilterRejected, got %v", err)
			}
			var rejected *domain.FilterRejectedError
			if !errors.As(err, &rejected) {
				t.Fatalf("Expected *FilterRejectedError, got %T", err)
			}
			if rejected.Reason != tt.reason {
				t.Errorf("Reason: want %s, got %s", tt.reason, rejected.Reason)
			}
			if got := RejectReasonOf(err); got != string(tt.reason) {
				t.Errorf("RejectReasonOf: want %s, got %s", tt.reason, got)
			}
		})
	}
}

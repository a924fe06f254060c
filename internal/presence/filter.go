package presence

import (
	"strings"

	"github.com/genricoloni/mprisence/internal/domain"
)

// Filter applies the URL allow-list and artist block-list to snapshots
type Filter struct {
	cfg domain.FilterConfig
}

// NewFilter creates a filter enforcing cfg
func NewFilter(cfg domain.FilterConfig) *Filter {
	return &Filter{cfg: cfg}
}

// Check returns nil when snap may be reported, or a *domain.FilterRejectedError.
// A rejection discards the whole snapshot whatever its status.
func (f *Filter) Check(snap domain.Snapshot) error {
	if snap.URL == nil {
		if !f.cfg.PlayNoURL {
			return &domain.FilterRejectedError{Reason: domain.ReasonNoURL}
		}
	} else if f.cfg.UseWhitelist && !containsAny(*snap.URL, f.cfg.KeywordWhitelist) {
		return &domain.FilterRejectedError{Reason: domain.ReasonNotWhitelisted, Detail: *snap.URL}
	}

	if f.cfg.UseArtistBlacklist {
		for _, artist := range snap.Artists {
			if containsAny(artist, f.cfg.ArtistKeywordBlacklist) {
				return &domain.FilterRejectedError{Reason: domain.ReasonBlacklistedArtist, Detail: artist}
			}
		}
	}

	return nil
}

// containsAny reports whether s contains one of keywords (case-sensitive)
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

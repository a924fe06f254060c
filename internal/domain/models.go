package domain

// PlaybackStatus represents the current state of the media player
type PlaybackStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlaybackStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlaybackStatus = "Stopped"
	// StatusUnknown is used when the player reports nothing usable
	StatusUnknown PlaybackStatus = "Unknown"
)

// ParsePlaybackStatus maps an MPRIS PlaybackStatus string to a PlaybackStatus.
// Anything outside the three MPRIS values becomes StatusUnknown.
func ParsePlaybackStatus(s string) PlaybackStatus {
	switch PlaybackStatus(s) {
	case StatusPlaying, StatusPaused, StatusStopped:
		return PlaybackStatus(s)
	default:
		return StatusUnknown
	}
}

// Snapshot is the now-playing state of one player service at one poll tick
type Snapshot struct {
	// ServiceID is the bus name of the player (e.g. "org.mpris.MediaPlayer2.firefox")
	ServiceID string
	// Status is the current playback status
	Status PlaybackStatus
	// PositionSeconds is the playback position, truncated to whole seconds
	PositionSeconds int64
	// Position is PositionSeconds rendered as "m:ss"
	Position string
	// Title of the track, nil when the player did not report one
	Title *string
	// Album name, nil when the player did not report one
	Album *string
	// URL of the media, nil when the player did not report one
	URL *string
	// Artists in the order the player reported them
	Artists []string
	// ArtURL is the artwork location; observed only, never rendered
	ArtURL string
}

// FilterConfig holds the content rules applied to every snapshot.
// It is loaded once at startup and never mutated.
type FilterConfig struct {
	KeywordWhitelist       []string `mapstructure:"keyword_whitelist"`
	UseWhitelist           bool     `mapstructure:"use_whitelist"`
	PlayNoURL              bool     `mapstructure:"play_no_url"`
	ArtistKeywordBlacklist []string `mapstructure:"artist_keyword_blacklist"`
	UseArtistBlacklist     bool     `mapstructure:"use_artist_blacklist"`
	EmboldenTitles         bool     `mapstructure:"embolden_titles"`
}

// Presence is the rendered status handed to a PresenceSink
type Presence struct {
	State      string
	Details    string
	LargeImage string
	LargeText  string
}

// StringPtr returns a pointer to s. Handy for building snapshots in tests.
func StringPtr(s string) *string {
	return &s
}

package domain

import (
	"context"
	"time"
)

// PlayerPrefix is the bus name prefix shared by every MPRIS media player
const PlayerPrefix = "org.mpris.MediaPlayer2."

// PropertySource gives read access to the properties of MPRIS players
//
//go:generate mockgen -destination=mocks/property_source_mock.go -package=mocks github.com/genricoloni/mprisence/internal/domain PropertySource
type PropertySource interface {
	// ListPlayers returns the bus names starting with PlayerPrefix, in bus order
	ListPlayers(ctx context.Context) ([]string, error)

	// Property reads one property of the org.mpris.MediaPlayer2.Player interface
	// (e.g. "PlaybackStatus", "Position", "Metadata").
	// A property the player does not implement yields a KindNone Value and no error.
	// Transport failures are returned as *PropertyFetchError.
	Property(ctx context.Context, service, name string) (Value, error)
}

// PresenceSink publishes a rendered presence to a display backend
//
//go:generate mockgen -destination=mocks/presence_sink_mock.go -package=mocks github.com/genricoloni/mprisence/internal/domain PresenceSink
type PresenceSink interface {
	// SetPresence publishes p, replacing whatever was shown before
	SetPresence(ctx context.Context, p Presence) error

	// Clear removes the current presence
	Clear(ctx context.Context) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetFilter returns the content filter rules
	GetFilter() FilterConfig

	// GetAppID returns the presence backend application identifier
	GetAppID() uint64

	// GetLargeImage returns the asset key shown next to the presence
	GetLargeImage() string

	// GetLargeText returns the tooltip of the large image
	GetLargeText() string

	// GetPollInterval returns the delay between two ticks
	GetPollInterval() time.Duration

	// GetMetricsAddr returns the listen address of the metrics server, empty when disabled
	GetMetricsAddr() string
}

// Package presence turns MPRIS player properties into a rendered presence:
// it extracts a snapshot per player, filters it, picks the player to report
// on and renders the state and details lines.
package presence

import (
	"context"
	"fmt"

	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/genricoloni/mprisence/internal/format"
	"go.uber.org/zap"
)

const (
	propPlaybackStatus = "PlaybackStatus"
	propPosition       = "Position"
	propMetadata       = "Metadata"

	keyTitle  = "xesam:title"
	keyURL    = "xesam:url"
	keyAlbum  = "xesam:album"
	keyArtist = "xesam:artist"
	keyArtURL = "mpris:artUrl"

	microsPerSecond = 1_000_000
)

// Extractor reads the properties of one player into a domain.Snapshot
type Extractor struct {
	logger *zap.Logger
	source domain.PropertySource
}

// NewExtractor creates an extractor reading from source
func NewExtractor(logger *zap.Logger, source domain.PropertySource) *Extractor {
	return &Extractor{logger: logger, source: source}
}

// Extract builds the snapshot of service.
//
// Missing or mistyped fields are defaulted: status to Unknown, position to 0,
// and metadata fields are left unset. Only a failing property fetch is
// returned as an error.
func (e *Extractor) Extract(ctx context.Context, service string) (domain.Snapshot, error) {
	snap := domain.Snapshot{ServiceID: service, Status: domain.StatusUnknown}
	log := e.logger.With(zap.String("player", service))

	status, err := e.source.Property(ctx, service, propPlaybackStatus)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if s, ok := status.AsString(); ok {
		snap.Status = domain.ParsePlaybackStatus(s)
	} else {
		e.mismatch(log, propPlaybackStatus, status)
	}

	position, err := e.source.Property(ctx, service, propPosition)
	if err != nil {
		return domain.Snapshot{}, err
	}
	micros, ok := position.AsInt()
	if !ok {
		e.mismatch(log, propPosition, position)
	}
	snap.PositionSeconds = micros / microsPerSecond
	snap.Position = format.FormatPosition(snap.PositionSeconds)

	metadata, err := e.source.Property(ctx, service, propMetadata)
	if err != nil {
		return domain.Snapshot{}, err
	}
	dict, ok := metadata.AsDict()
	if !ok {
		// Some players have no metadata when nothing is loaded
		log.Debug("Metadata is not a map, skipping", zap.Stringer("kind", metadata.Kind()))
		return snap, nil
	}

	snap.Title = e.optionalString(log, dict, keyTitle)
	snap.URL = e.optionalString(log, dict, keyURL)
	snap.Album = e.optionalString(log, dict, keyAlbum)
	snap.Artists = e.artists(log, dict)

	if artURL := e.optionalString(log, dict, keyArtURL); artURL != nil {
		snap.ArtURL = *artURL
		log.Debug("Art url", zap.String("url", snap.ArtURL))
	}

	log.Debug("Snapshot extracted",
		zap.String("status", string(snap.Status)),
		zap.String("position", snap.Position),
		zap.Strings("artists", snap.Artists))

	return snap, nil
}

// optionalString returns dict[key] when it holds a string
func (e *Extractor) optionalString(log *zap.Logger, dict map[string]domain.Value, key string) *string {
	v, ok := dict[key]
	if !ok {
		return nil
	}
	s, ok := v.AsString()
	if !ok {
		e.mismatch(log, key, v)
		return nil
	}
	return &s
}

// artists reads xesam:artist, keeping the string entries in order
func (e *Extractor) artists(log *zap.Logger, dict map[string]domain.Value) []string {
	v, ok := dict[keyArtist]
	if !ok {
		return nil
	}

	items, ok := v.AsArray()
	if !ok {
		e.mismatch(log, keyArtist, v)
		return nil
	}

	artists := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.AsString(); ok {
			artists = append(artists, s)
		} else {
			e.mismatch(log, keyArtist, item)
		}
	}
	return artists
}

func (e *Extractor) mismatch(log *zap.Logger, field string, v domain.Value) {
	if v.Kind() == domain.KindNone {
		return
	}
	log.Debug("Unexpected type in player properties",
		zap.String("field", field),
		zap.Error(fmt.Errorf("%w: got %s", domain.ErrMetadataTypeMismatch, v.Kind())))
}

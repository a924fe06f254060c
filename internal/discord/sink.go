package discord

import (
	"context"
	"fmt"

	"github.com/genricoloni/mprisence/internal/domain"
	"go.uber.org/zap"
)

// Sink publishes presences through a Client, reconnecting on demand.
// It implements domain.PresenceSink.
type Sink struct {
	logger *zap.Logger
	client *Client
}

// NewSink creates a sink for the configured application
func NewSink(logger *zap.Logger, cfg domain.Config) *Sink {
	return NewSinkWithClient(logger, NewClient(logger, cfg.GetAppID(), nil))
}

// NewSinkWithClient creates a sink on top of an existing client
func NewSinkWithClient(logger *zap.Logger, client *Client) *Sink {
	return &Sink{logger: logger, client: client}
}

// SetPresence publishes p as the current activity
func (s *Sink) SetPresence(ctx context.Context, p domain.Presence) error {
	activity := &Activity{State: p.State, Details: p.Details}
	if p.LargeImage != "" || p.LargeText != "" {
		activity.Assets = &Assets{LargeImage: p.LargeImage, LargeText: p.LargeText}
	}
	return s.send(ctx, activity)
}

// Clear removes the current activity
func (s *Sink) Clear(ctx context.Context) error {
	return s.send(ctx, nil)
}

// Close disconnects from Discord
func (s *Sink) Close() error {
	return s.client.Close()
}

func (s *Sink) send(ctx context.Context, activity *Activity) error {
	if err := s.client.Connect(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPublish, err)
	}
	if err := s.client.SetActivity(ctx, activity); err != nil {
		if !s.client.Connected() {
			s.logger.Debug("Discord connection dropped, will reconnect on next publish")
		}
		return fmt.Errorf("%w: %w", domain.ErrPublish, err)
	}
	return nil
}

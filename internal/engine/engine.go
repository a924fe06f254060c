package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/genricoloni/mprisence/internal/presence"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPollInterval = 2 * time.Second

	// An unchanged presence is sent again after this long. A restarted
	// Discord client has lost it and only a write notices the new socket.
	refreshInterval = 15 * time.Second
)

// Recorder receives the poll loop counters
type Recorder interface {
	RecordTick()
	RecordSelection(status domain.PlaybackStatus)
	RecordPublishError(op string)
	RecordClear()
}

// Service is a long running companion of the loop, such as the metrics server.
// Start blocks until ctx is done.
type Service interface {
	Start(ctx context.Context) error
}

// loopState is carried from one tick to the next
type loopState struct {
	remembered string
	player     string
	last       *domain.Presence
	lastSent   time.Time
	cleared    bool
}

// Engine polls the media players and keeps the presence up to date
type Engine struct {
	logger   *zap.Logger
	cfg      domain.Config
	selector *presence.Selector
	renderer *presence.Renderer
	sink     domain.PresenceSink
	recorder Recorder
	service  Service
	now      func() time.Time

	cancel context.CancelFunc
	group  *errgroup.Group
	state  loopState
}

// NewEngine creates a new orchestration engine. service may be nil.
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	selector *presence.Selector,
	renderer *presence.Renderer,
	sink domain.PresenceSink,
	recorder Recorder,
	service Service,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		selector: selector,
		renderer: renderer,
		sink:     sink,
		recorder: recorder,
		service:  service,
		now:      time.Now,
		state:    loopState{remembered: presence.InitialPosition},
	}
}

// Start launches the poll loop and the companion service.
// It returns immediately (non-blocking).
func (e *Engine) Start(_ context.Context) error {
	interval := e.cfg.GetPollInterval()
	if interval <= 0 {
		interval = defaultPollInterval
	}
	e.logger.Info("Engine starting...", zap.Duration("interval", interval))

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	e.cancel = cancel
	e.group = g

	g.Go(func() error {
		e.runLoop(gctx, interval)
		return nil
	})
	if e.service != nil {
		g.Go(func() error {
			// The loop keeps running without the service
			if err := e.service.Start(gctx); err != nil {
				e.logger.Error("Service stopped", zap.Error(err))
			}
			return nil
		})
	}
	return nil
}

// runLoop ticks once immediately and then every interval
func (e *Engine) runLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick runs one selection and publishes the result.
// Nothing that happens here stops the loop.
func (e *Engine) tick(ctx context.Context) {
	e.recorder.RecordTick()
	e.logger.Debug("Tick")

	snap, err := e.selector.Select(ctx)
	if err != nil {
		e.idle(ctx, err)
		return
	}
	e.recorder.RecordSelection(snap.Status)

	if snap.ServiceID != e.state.player {
		e.logger.Info("Reporting player",
			zap.String("player", snap.ServiceID),
			zap.String("status", string(snap.Status)))
		e.state.player = snap.ServiceID
	}

	p := e.renderer.Render(snap, &e.state.remembered)
	now := e.now()
	if e.state.last != nil && *e.state.last == p && now.Sub(e.state.lastSent) < refreshInterval {
		return
	}

	if err := e.sink.SetPresence(ctx, p); err != nil {
		e.recorder.RecordPublishError("set")
		e.logger.Warn("Failed to publish presence", zap.Error(err))
		return
	}
	e.state.last = &p
	e.state.lastSent = now
	e.state.cleared = false
}

// idle clears the presence once per stretch of ticks without media
func (e *Engine) idle(ctx context.Context, err error) {
	if e.state.player != "" {
		e.logger.Info("No media available", zap.Error(err))
		e.state.player = ""
	}
	if e.state.cleared {
		return
	}

	if err := e.sink.Clear(ctx); err != nil {
		e.recorder.RecordPublishError("clear")
		e.logger.Warn("Failed to clear presence", zap.Error(err))
		return
	}
	e.recorder.RecordClear()
	e.state.cleared = true
	e.state.last = nil
}

// Stop halts the loop, waits for it and clears the presence
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")

	if e.cancel != nil {
		e.cancel()
		done := make(chan error, 1)
		go func() { done <- e.group.Wait() }()
		select {
		case err := <-done:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return fmt.Errorf("wait for engine loop: %w", ctx.Err())
		}
	}

	if !e.state.cleared {
		if err := e.sink.Clear(ctx); err != nil {
			e.logger.Warn("Failed to clear presence on shutdown", zap.Error(err))
		}
	}
	if closer, ok := e.sink.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close presence sink: %w", err)
		}
	}

	e.logger.Info("Engine stopped")
	return nil
}

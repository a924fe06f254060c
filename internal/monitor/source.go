package monitor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
)

// D-Bus errors a player sends back for a property it does not implement
var missingPropertyErrors = map[string]bool{
	"org.freedesktop.DBus.Error.InvalidArgs":      true,
	"org.freedesktop.DBus.Error.UnknownProperty":  true,
	"org.freedesktop.DBus.Error.UnknownInterface": true,
}

// MprisSource reads MPRIS player properties from the session bus.
// The connection is opened lazily on first use and reopened after it is closed.
type MprisSource struct {
	logger *zap.Logger
	mu     sync.Mutex
	conn   DBusClient // Interface for testability
	dial   func() (DBusClient, error)
}

// NewMprisSource creates a source backed by the session bus
func NewMprisSource(logger *zap.Logger) *MprisSource {
	return &MprisSource{
		logger: logger,
		dial: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// NewMprisSourceWithClient creates a source on top of an existing client
func NewMprisSourceWithClient(logger *zap.Logger, conn DBusClient) *MprisSource {
	return &MprisSource{
		logger: logger,
		conn:   conn,
		dial: func() (DBusClient, error) {
			return nil, errors.New("no dialer configured")
		},
	}
}

// client returns the current connection, dialing if there is none
func (s *MprisSource) client() (DBusClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.dial()
	if err != nil {
		return nil, fmt.Errorf("session bus connection failed: %w", err)
	}
	s.logger.Info("Connected to session bus")
	s.conn = conn
	return conn, nil
}

// ListPlayers returns the bus names of all running MPRIS players, in bus order
func (s *MprisSource) ListPlayers(ctx context.Context) ([]string, error) {
	conn, err := s.client()
	if err != nil {
		return nil, err
	}

	names, err := conn.ListNames(ctx)
	if err != nil {
		s.drop(conn)
		return nil, fmt.Errorf("failed to list bus names: %w", err)
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, domain.PlayerPrefix) {
			players = append(players, name)
		}
	}

	s.logger.Debug("Player detection complete", zap.Strings("players", players))
	return players, nil
}

// Property reads one property of the org.mpris.MediaPlayer2.Player interface
func (s *MprisSource) Property(ctx context.Context, service, name string) (domain.Value, error) {
	conn, err := s.client()
	if err != nil {
		return domain.Value{}, &domain.PropertyFetchError{Service: service, Property: name, Err: err}
	}

	variant, err := conn.GetProperty(ctx, service, mprisPath, mprisPlayerIface+"."+name)
	if err != nil {
		if isMissingProperty(err) {
			s.logger.Debug("Player does not expose property",
				zap.String("player", service),
				zap.String("property", name))
			return domain.Value{}, nil
		}
		return domain.Value{}, &domain.PropertyFetchError{Service: service, Property: name, Err: err}
	}

	return toValue(variant.Value()), nil
}

// Close closes the underlying connection, if any
func (s *MprisSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// drop closes conn so the next call redials, unless it was already replaced
func (s *MprisSource) drop(conn DBusClient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != conn {
		return
	}
	if err := conn.Close(); err != nil {
		s.logger.Debug("Failed to close session bus connection", zap.Error(err))
	}
	s.conn = nil
}

func isMissingProperty(err error) bool {
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		return missingPropertyErrors[dbusErr.Name]
	}
	var dbusErrPtr *dbus.Error
	if errors.As(err, &dbusErrPtr) && dbusErrPtr != nil {
		return missingPropertyErrors[dbusErrPtr.Name]
	}
	return false
}

// toValue converts a decoded D-Bus value into a domain.Value.
// Types with no domain Kind (object paths, doubles, structs...) become KindOther.
func toValue(v interface{}) domain.Value {
	switch x := v.(type) {
	case nil:
		return domain.Value{}
	case dbus.Variant:
		return toValue(x.Value())
	case string:
		return domain.StringValue(x)
	case int64:
		return domain.IntValue(x)
	case int32:
		return domain.IntValue(int64(x))
	case int16:
		return domain.IntValue(int64(x))
	case uint32:
		return domain.IntValue(int64(x))
	case uint16:
		return domain.IntValue(int64(x))
	case byte:
		return domain.IntValue(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return domain.OtherValue()
		}
		return domain.IntValue(int64(x))
	case []string:
		items := make([]domain.Value, 0, len(x))
		for _, s := range x {
			items = append(items, domain.StringValue(s))
		}
		return domain.ArrayValue(items...)
	case []dbus.Variant:
		items := make([]domain.Value, 0, len(x))
		for _, item := range x {
			items = append(items, toValue(item.Value()))
		}
		return domain.ArrayValue(items...)
	case []interface{}:
		items := make([]domain.Value, 0, len(x))
		for _, item := range x {
			items = append(items, toValue(item))
		}
		return domain.ArrayValue(items...)
	case map[string]dbus.Variant:
		dict := make(map[string]domain.Value, len(x))
		for k, item := range x {
			dict[k] = toValue(item.Value())
		}
		return domain.DictValue(dict)
	case map[string]interface{}:
		dict := make(map[string]domain.Value, len(x))
		for k, item := range x {
			dict[k] = toValue(item)
		}
		return domain.DictValue(dict)
	default:
		return domain.OtherValue()
	}
}

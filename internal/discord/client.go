package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultIOTimeout = 5 * time.Second

// ErrNotConnected is returned when a command is sent before Connect succeeded
var ErrNotConnected = errors.New("discord: not connected")

// Dialer opens a connection to the Discord IPC socket
type Dialer func(ctx context.Context) (net.Conn, error)

// Client is a minimal Discord RPC client speaking the local IPC protocol
type Client struct {
	logger   *zap.Logger
	clientID string
	dial     Dialer
	pid      int

	mu   sync.Mutex
	conn net.Conn
}

// NewClient creates a client for the given application ID.
// dial may be nil to use the platform socket.
func NewClient(logger *zap.Logger, appID uint64, dial Dialer) *Client {
	if dial == nil {
		dial = DialIPC
	}
	return &Client{
		logger:   logger,
		clientID: strconv.FormatUint(appID, 10),
		dial:     dial,
		pid:      os.Getpid(),
	}
}

// Connected reports whether a handshaken connection is open
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Connect dials the IPC socket and performs the handshake.
// It is a no-op when already connected.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("dial discord ipc: %w", err)
	}
	setDeadline(ctx, conn)

	if err := writeFrame(conn, opHandshake, handshake{Version: 1, ClientID: c.clientID}); err != nil {
		conn.Close()
		return fmt.Errorf("handshake: %w", err)
	}

	op, body, err := readFrame(conn)
	if err != nil {
		conn.Close()
		return fmt.Errorf("handshake: %w", err)
	}
	if op == opClose {
		conn.Close()
		return fmt.Errorf("handshake rejected: %s", closeReason(body))
	}

	var ready response
	if err := json.Unmarshal(body, &ready); err != nil || ready.Evt != "READY" {
		conn.Close()
		return fmt.Errorf("handshake: unexpected reply %q", body)
	}

	c.logger.Info("Connected to Discord", zap.String("clientID", c.clientID))
	c.conn = conn
	return nil
}

// SetActivity publishes activity. A nil activity clears the presence.
// Any I/O failure drops the connection so the next Connect starts fresh.
func (c *Client) SetActivity(ctx context.Context, activity *Activity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	err := c.setActivity(ctx, activity)
	var rpcErr *RPCError
	if err != nil && !errors.As(err, &rpcErr) {
		c.dropLocked()
	}
	return err
}

func (c *Client) setActivity(ctx context.Context, activity *Activity) error {
	args, err := json.Marshal(setActivityArgs{PID: c.pid, Activity: activity})
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}

	nonce := uuid.NewString()
	setDeadline(ctx, c.conn)
	if err := writeFrame(c.conn, opFrame, command{Cmd: "SET_ACTIVITY", Args: args, Nonce: nonce}); err != nil {
		return err
	}

	for {
		op, body, err := readFrame(c.conn)
		if err != nil {
			return err
		}

		switch op {
		case opPing:
			var pong any = struct{}{}
			if len(body) > 0 {
				pong = json.RawMessage(body)
			}
			if err := writeFrame(c.conn, opPong, pong); err != nil {
				return err
			}
			continue
		case opClose:
			return fmt.Errorf("connection closed by discord: %s", closeReason(body))
		case opFrame:
		default:
			continue
		}

		var resp response
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("decode reply: %w", err)
		}
		if resp.Nonce != nonce {
			c.logger.Debug("Ignoring unrelated frame", zap.String("evt", resp.Evt), zap.String("cmd", resp.Cmd))
			continue
		}
		if resp.Evt == "ERROR" {
			return &RPCError{Code: resp.Data.Code, Message: resp.Data.Message}
		}
		return nil
	}
}

// Close sends a close frame and closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	_ = c.conn.SetDeadline(time.Now().Add(time.Second))
	_ = writeFrame(c.conn, opClose, struct{}{})
	return c.dropLocked()
}

func (c *Client) dropLocked() error {
	err := c.conn.Close()
	c.conn = nil
	return err
}

// RPCError is an ERROR event returned by Discord for a command
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("discord rpc error %d: %s", e.Code, e.Message)
}

func setDeadline(ctx context.Context, conn net.Conn) {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultIOTimeout)
	}
	_ = conn.SetDeadline(deadline)
}

func closeReason(body []byte) string {
	var p closePayload
	if err := json.Unmarshal(body, &p); err != nil || p.Message == "" {
		return string(body)
	}
	return fmt.Sprintf("%d %s", p.Code, p.Message)
}

//go:build windows
// +build windows

package discord

import (
	"context"
	"fmt"
	"net"
)

// DialIPC is not implemented on Windows, where Discord listens on a named pipe
func DialIPC(ctx context.Context) (net.Conn, error) {
	return nil, fmt.Errorf("discord ipc over named pipes is not yet implemented for Windows")
}

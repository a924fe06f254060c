//go:build !windows
// +build !windows

package discord

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
)

const socketSlots = 10

// socketDirs lists where Discord (and its sandboxed builds) put the IPC socket
func socketDirs() []string {
	var bases []string
	for _, env := range []string{"XDG_RUNTIME_DIR", "TMPDIR", "TMP", "TEMP"} {
		if dir := os.Getenv(env); dir != "" {
			bases = append(bases, dir)
		}
	}
	bases = append(bases, "/tmp")

	var dirs []string
	for _, base := range bases {
		dirs = append(dirs,
			base,
			filepath.Join(base, "app", "com.discordapp.Discord"),
			filepath.Join(base, "snap.discord"),
		)
	}
	return dirs
}

// DialIPC connects to the first discord-ipc-N socket that accepts a connection
func DialIPC(ctx context.Context) (net.Conn, error) {
	var d net.Dialer
	var lastErr error
	for _, dir := range socketDirs() {
		for i := 0; i < socketSlots; i++ {
			path := filepath.Join(dir, fmt.Sprintf("discord-ipc-%d", i))
			if _, err := os.Stat(path); err != nil {
				continue
			}
			conn, err := d.DialContext(ctx, "unix", path)
			if err == nil {
				return conn, nil
			}
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("no discord ipc socket found")
}

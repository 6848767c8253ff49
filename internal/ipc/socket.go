package ipc

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SocketPath is the control socket: the "socket" setting, or blazefx.sock
// in $XDG_RUNTIME_DIR, falling back to the temp dir.
func SocketPath() string {
	if p := viper.GetString("socket"); p != "" {
		return p
	}

	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, "blazefx.sock")
}

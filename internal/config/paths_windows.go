//go:build windows

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	local := os.Getenv("LOCALAPPDATA")
	roaming := os.Getenv("APPDATA")
	return []string{
		filepath.Join(local, "sysdeck", "backend.yaml"),
		filepath.Join(roaming, "sysdeck", "backend.yaml"),
	}
}

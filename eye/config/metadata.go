package config

import (
	"os/exec"
	"runtime/debug"
	"strings"
	"time"
)

const unknownCommit = "unknown"

// CollectMetadata stamps the current time and the commit of the code that is running
func CollectMetadata() Metadata {
	return Metadata{
		Timestamp: time.Now().UTC().Format("2006-01-02 15:04:05"),
		GitCommit: currentCommit(),
	}
}

// currentCommit prefers the revision embedded at build time and falls back to asking git,
// which works under `go run`.
func currentCommit() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return unknownCommit
	}
	return strings.TrimSpace(string(out))
}

// Package config resolves the set of log directories the server is
// permitted to read from.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvDirs is the environment variable holding a colon-separated list of log
// directories, consulted when no directories are supplied explicitly.
const EnvDirs = "LOG_MCP_DIR"

// EnvRuntimeDir names the runtime root the default directory is derived
// from: $XDG_RUNTIME_DIR/log.
const EnvRuntimeDir = "XDG_RUNTIME_DIR"

// Config holds the immutable, priority-ordered list of permitted log
// directories. It is resolved once at startup and passed by value into
// every operation; nothing mutates it afterwards.
type Config struct {
	Directories []string
}

// ConfigError reports that no source yielded any permitted directory.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Resolve produces the permitted directory set. Priority, highest first:
// explicitly supplied directories (order preserved), the LOG_MCP_DIR
// environment variable, then $XDG_RUNTIME_DIR/log. Directories are
// absolutized and deduplicated; existence is not checked here, it is
// checked per operation.
func Resolve(explicit []string) (Config, error) {
	if len(explicit) > 0 {
		return Config{Directories: normalize(explicit)}, nil
	}

	if env := os.Getenv(EnvDirs); env != "" {
		var dirs []string
		for _, entry := range strings.Split(env, ":") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				dirs = append(dirs, entry)
			}
		}
		if len(dirs) > 0 {
			return Config{Directories: normalize(dirs)}, nil
		}
	}

	runtimeDir := os.Getenv(EnvRuntimeDir)
	if runtimeDir == "" {
		return Config{}, &ConfigError{
			Message: EnvRuntimeDir + " not set and no log directory specified",
		}
	}

	return Config{Directories: normalize([]string{filepath.Join(runtimeDir, "log")})}, nil
}

// normalize absolutizes, cleans and deduplicates directories while
// preserving priority order.
func normalize(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = filepath.Clean(dir)
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		out = append(out, abs)
	}
	return out
}

// Missing returns the subset of configured directories that do not
// currently exist on disk. Callers may surface these as warnings; a
// missing directory is never fatal at resolution time.
func (c Config) Missing() []string {
	var missing []string
	for _, dir := range c.Directories {
		if _, err := os.Stat(dir); err != nil {
			missing = append(missing, dir)
		}
	}
	return missing
}

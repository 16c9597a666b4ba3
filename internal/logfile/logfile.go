// Package logfile resolves caller-supplied filenames into files inside the
// permitted log directories and loads their content.
package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taigrr/log-mcp/internal/config"
	"github.com/taigrr/log-mcp/internal/types"
)

type (
	// PathError reports an absolute path that lies outside every permitted
	// directory.
	PathError struct {
		Filename string
	}

	// NotFoundError reports a resolved file that does not exist on disk.
	NotFoundError struct {
		Path string
	}

	// NotAFileError reports a resolved path that exists but is not a
	// regular file.
	NotAFileError struct {
		Path string
	}
)

func (e *PathError) Error() string {
	return fmt.Sprintf("file not in any permitted log directory: %s", e.Filename)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("log file does not exist: %s", e.Path)
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("path exists but is not a file: %s", e.Path)
}

// Resolve maps filename to a file inside one of the permitted directories.
//
// Absolute filenames are canonicalized and containment-checked against each
// directory in priority order. Relative filenames resolve to the first
// directory where they exist; when they exist nowhere, the first directory
// still wins so that downstream operations can report a uniform "does not
// exist" message instead of a resolution failure.
func Resolve(filename string, dirs []string) (types.ResolvedFile, error) {
	if len(dirs) == 0 {
		return types.ResolvedFile{}, &config.ConfigError{Message: "no log directories configured"}
	}

	if filepath.IsAbs(filename) {
		resolved := canonicalize(filename)
		for _, dir := range dirs {
			if contains(canonicalize(dir), resolved) {
				return types.ResolvedFile{Dir: dir, Path: resolved}, nil
			}
		}
		return types.ResolvedFile{}, &PathError{Filename: filename}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return types.ResolvedFile{Dir: dir, Path: canonicalize(candidate)}, nil
		}
	}

	return types.ResolvedFile{
		Dir:  dirs[0],
		Path: filepath.Join(dirs[0], filename),
	}, nil
}

// canonicalize resolves symlinks when the path exists, falling back to the
// cleaned absolute path when it does not.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// contains reports whether path lies within dir. The check is
// separator-aware: /var/log must not admit /var/log2/x, so a plain prefix
// comparison is not enough.
func contains(dir, path string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, dir+string(os.PathSeparator))
}

// Read loads the whole file and snapshots its fingerprint. Memory scales
// with file size; windowing happens after the load, never during it.
func Read(path string) (string, types.Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", types.Fingerprint{}, &NotFoundError{Path: path}
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", types.Fingerprint{}, fmt.Errorf("permission denied: %s", path)
		}
		return "", types.Fingerprint{}, fmt.Errorf("failed to stat file: %s - %w", path, err)
	}
	if info.IsDir() {
		return "", types.Fingerprint{}, &NotAFileError{Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", types.Fingerprint{}, fmt.Errorf("permission denied: %s", path)
		}
		return "", types.Fingerprint{}, fmt.Errorf("failed to read file: %s - %w", path, err)
	}

	return string(content), types.Fingerprint{
		Size:  info.Size(),
		MTime: info.ModTime().Unix(),
	}, nil
}

// SplitLines splits content into lines. A trailing newline does not
// produce a phantom empty line, and empty content is zero lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// Load reads the file at path and returns its lines with file metadata.
func Load(path string) ([]string, types.FileInfo, error) {
	content, fp, err := Read(path)
	if err != nil {
		return nil, types.FileInfo{}, err
	}
	lines := SplitLines(content)
	return lines, types.FileInfo{
		Path:        path,
		Fingerprint: fp,
		TotalLines:  len(lines),
	}, nil
}

// List returns the sorted absolute paths of all regular files across the
// permitted directories, plus one warning per directory that could not be
// scanned. A bad directory never fails the listing.
func List(dirs []string) ([]string, []string) {
	var files, warnings []string

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				warnings = append(warnings, fmt.Sprintf("Directory does not exist: %s", dir))
			} else if errors.Is(err, fs.ErrPermission) {
				warnings = append(warnings, fmt.Sprintf("Permission denied accessing: %s", dir))
			} else {
				warnings = append(warnings, fmt.Sprintf("Cannot access %s: %v", dir, err))
			}
			continue
		}
		if !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("Path exists but is not a directory: %s", dir))
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Permission denied accessing: %s", dir))
			continue
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, warnings
}

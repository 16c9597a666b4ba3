// Package types defines the data model shared by the log inspection services.
package types

type (
	// ResolvedFile pairs a permitted directory with the absolute path of a
	// file inside it.
	ResolvedFile struct {
		Dir  string `json:"dir"`
		Path string `json:"path"`
	}

	// Fingerprint is a (size, mtime) snapshot of a file, used for advisory
	// staleness detection between successive paginated reads. It is never
	// a lock: a mismatch produces a warning, not a failure.
	Fingerprint struct {
		Size  int64 `json:"size"`
		MTime int64 `json:"mtime"` // unix seconds
	}

	// FileInfo describes a loaded log file.
	FileInfo struct {
		Path        string      `json:"path"`
		Fingerprint Fingerprint `json:"fingerprint"`
		TotalLines  int         `json:"totalLines"`
	}
)

// Matches reports whether two fingerprints are identical.
func (f Fingerprint) Matches(other Fingerprint) bool {
	return f.Size == other.Size && f.MTime == other.MTime
}

package types

// Window modes. LineMode is the legacy behavior where an explicit line
// count fully determines the window; TokenMode bounds the window by an
// estimated token budget instead.
const (
	LineMode  = "lines"
	TokenMode = "tokens"
)

// ReadWindow is a contiguous run of emitted lines plus the metadata a
// caller needs to continue reading where the window stopped.
type ReadWindow struct {
	Lines      []string `json:"lines"`
	Start      int      `json:"start"` // 1-based, inclusive
	End        int      `json:"end"`   // 1-based, inclusive; Start-1 when empty
	TotalLines int      `json:"totalLines"`
	Tokens     int      `json:"tokens"`
	Mode       string   `json:"mode"`
	NextStart  int      `json:"nextStart,omitempty"` // 0 when the window reaches the end
}

// Count returns the number of emitted lines.
func (w ReadWindow) Count() int {
	return len(w.Lines)
}

// Complete reports whether the window reached the end of the requested range.
func (w ReadWindow) Complete() bool {
	return w.NextStart == 0
}

package types

type (
	// ContextBlock is the incremental set of lines emitted for one flagged
	// line. Lines holds only indices not already emitted by an earlier
	// block, so blocks never repeat content.
	ContextBlock struct {
		Hit   int   `json:"hit"`
		Lines []int `json:"lines"`
	}

	// ScanResult is the outcome of a heuristic error scan.
	ScanResult struct {
		TotalHits       int            `json:"totalHits"`
		Blocks          []ContextBlock `json:"blocks"`
		Hits            []int          `json:"hits"` // every flagged line, for marker rendering
		Remaining       int            `json:"remaining"`
		Tokens          int            `json:"tokens"`
		IncludeWarnings bool           `json:"includeWarnings"`
		Context         int            `json:"context"`
	}
)

// Shown returns the number of hits covered by the emitted blocks.
func (r ScanResult) Shown() int {
	return len(r.Blocks)
}

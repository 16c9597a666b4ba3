package types

type (
	// Match is a matched line together with its context range. Indices are
	// 0-based; Start/End are inclusive and clamped to file bounds.
	Match struct {
		Line  int `json:"line"`
		Start int `json:"start"`
		End   int `json:"end"`
	}

	// SearchResult holds the budgeted slice of matches for one search call.
	SearchResult struct {
		Pattern      string  `json:"pattern"`
		TotalMatches int     `json:"totalMatches"`
		Skipped      int     `json:"skipped"`
		Matches      []Match `json:"matches"`
		Remaining    int     `json:"remaining"`
		Tokens       int     `json:"tokens"`
		Mode         string  `json:"mode"`
		Before       int     `json:"before"`
		After        int     `json:"after"`
	}
)

// NextSkip returns the skip value that resumes the listing after this page.
func (r SearchResult) NextSkip() int {
	return r.Skipped + len(r.Matches)
}

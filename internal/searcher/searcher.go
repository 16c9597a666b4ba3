// Package searcher finds lines matching a regular expression and windows
// the matches, with their surrounding context, under a match or token
// budget.
package searcher

import (
	"regexp"

	"github.com/taigrr/log-mcp/internal/tokens"
	"github.com/taigrr/log-mcp/internal/types"
)

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return "invalid regex pattern: " + e.Reason
}

// Options controls a single search call.
type Options struct {
	Pattern       string
	CaseSensitive bool
	Before        int // context lines before each match
	After         int // context lines after each match
	Skip          int // matches to drop before accumulating
	MaxMatches    int // legacy hard cap; overrides the token budget when > 0
	MaxTokens     int
}

// Compile builds the search regexp, defaulting to case-insensitive.
func Compile(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}
	return re, nil
}

// Search scans every line for the pattern and returns the budgeted page of
// matches after Skip. Context blocks of adjacent matches are kept
// independent: overlapping lines repeat across blocks rather than being
// merged.
func Search(lines []string, opts Options) (types.SearchResult, error) {
	re, err := Compile(opts.Pattern, opts.CaseSensitive)
	if err != nil {
		return types.SearchResult{}, err
	}

	var matched []int
	for i, line := range lines {
		if re.MatchString(line) {
			matched = append(matched, i)
		}
	}

	result := types.SearchResult{
		Pattern:      opts.Pattern,
		TotalMatches: len(matched),
		Skipped:      opts.Skip,
		Before:       opts.Before,
		After:        opts.After,
		Mode:         types.TokenMode,
	}
	if opts.MaxMatches > 0 {
		result.Mode = types.LineMode
	}

	if opts.Skip >= len(matched) {
		result.Remaining = 0
		return result, nil
	}
	candidates := matched[opts.Skip:]

	chars := 0
	for _, m := range candidates {
		if opts.MaxMatches > 0 {
			if len(result.Matches) >= opts.MaxMatches {
				break
			}
		} else {
			block := contextBlock(m, opts.Before, opts.After, len(lines))
			cost := blockChars(lines, block)
			if len(result.Matches) > 0 && (chars+cost)/tokens.CharsPerToken > opts.MaxTokens {
				break
			}
			chars += cost
		}
		result.Matches = append(result.Matches, contextBlock(m, opts.Before, opts.After, len(lines)))
	}

	if opts.MaxMatches > 0 {
		for _, m := range result.Matches {
			chars += blockChars(lines, m)
		}
	}
	result.Tokens = chars / tokens.CharsPerToken
	result.Remaining = len(candidates) - len(result.Matches)
	return result, nil
}

func contextBlock(match, before, after, total int) types.Match {
	return types.Match{
		Line:  match,
		Start: max(match-before, 0),
		End:   min(match+after, total-1),
	}
}

func blockChars(lines []string, m types.Match) int {
	chars := 0
	for i := m.Start; i <= m.End; i++ {
		chars += len(lines[i]) + 1
	}
	return chars
}

// Package errscan flags likely failure lines in a log file using a fixed,
// data-driven table of heuristic patterns, and windows them with
// deduplicated context under a token budget.
package errscan

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/log-mcp/internal/tokens"
	"github.com/taigrr/log-mcp/internal/types"
)

//go:embed patterns.yaml
var patternsYAML []byte

// Pattern is one heuristic entry of the table.
type Pattern struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Pattern  string `yaml:"pattern"`
}

type patternTable struct {
	Error   []Pattern `yaml:"error"`
	Warning []Pattern `yaml:"warning"`
}

var table = loadTable()

func loadTable() patternTable {
	var t patternTable
	if err := yaml.Unmarshal(patternsYAML, &t); err != nil {
		panic(fmt.Sprintf("errscan: invalid patterns.yaml: %v", err))
	}
	return t
}

// ErrorPatterns returns the fixed error-severity pattern entries.
func ErrorPatterns() []Pattern {
	return table.Error
}

// WarningPatterns returns the fixed warning-severity pattern entries.
func WarningPatterns() []Pattern {
	return table.Warning
}

// Matcher returns the combined case-insensitive alternation over the error
// patterns, extended with the warning patterns when includeWarnings is set.
func Matcher(includeWarnings bool) *regexp.Regexp {
	entries := table.Error
	if includeWarnings {
		entries = append(append([]Pattern{}, table.Error...), table.Warning...)
	}
	fragments := make([]string, 0, len(entries))
	for _, p := range entries {
		fragments = append(fragments, "(?:"+p.Pattern+")")
	}
	return regexp.MustCompile("(?i)(?:" + strings.Join(fragments, "|") + ")")
}

// Scan flags every line matching the heuristic set and builds per-hit
// context blocks. Unlike pattern search, lines already emitted by an
// earlier block are not repeated, and the budget counts only the
// incremental lines of each new block.
func Scan(lines []string, contextLines int, includeWarnings bool, maxTokens int) types.ScanResult {
	re := Matcher(includeWarnings)

	var hits []int
	for i, line := range lines {
		if re.MatchString(line) {
			hits = append(hits, i)
		}
	}

	result := types.ScanResult{
		TotalHits:       len(hits),
		Hits:            hits,
		IncludeWarnings: includeWarnings,
		Context:         contextLines,
	}

	seen := make(map[int]bool)
	chars := 0
	for n, hit := range hits {
		start := max(hit-contextLines, 0)
		end := min(hit+contextLines, len(lines)-1)

		var fresh []int
		cost := 0
		for i := start; i <= end; i++ {
			if seen[i] {
				continue
			}
			fresh = append(fresh, i)
			cost += len(lines[i]) + 1
		}

		if len(result.Blocks) > 0 && (chars+cost)/tokens.CharsPerToken > maxTokens {
			result.Remaining = len(hits) - n
			break
		}

		for _, i := range fresh {
			seen[i] = true
		}
		chars += cost
		result.Blocks = append(result.Blocks, types.ContextBlock{Hit: hit, Lines: fresh})
	}

	result.Tokens = chars / tokens.CharsPerToken
	return result
}

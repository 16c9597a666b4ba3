package searcher

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/taigrr/log-mcp/internal/types"
)

func logLines() []string {
	return []string{
		"starting service",      // 0
		"listening on :8080",    // 1
		"ERROR connection lost", // 2
		"retrying",              // 3
		"connected",             // 4
		"error: timeout",        // 5
		"shutting down",         // 6
	}
}

func TestCompile(t *testing.T) {
	t.Run("case insensitive by default", func(t *testing.T) {
		re, err := Compile("error", false)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if !re.MatchString("ERROR here") {
			t.Error("insensitive pattern should match upper case")
		}
	})

	t.Run("case sensitive when requested", func(t *testing.T) {
		re, err := Compile("error", true)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if re.MatchString("ERROR here") {
			t.Error("sensitive pattern should not match upper case")
		}
	})

	t.Run("invalid pattern yields PatternError", func(t *testing.T) {
		_, err := Compile("[invalid", false)
		var perr *PatternError
		if !errors.As(err, &perr) {
			t.Errorf("error = %v, want *PatternError", err)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("finds matches with clamped context", func(t *testing.T) {
		result, err := Search(logLines(), Options{
			Pattern:   "error",
			Before:    2,
			After:     2,
			MaxTokens: 1000,
		})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if result.TotalMatches != 2 {
			t.Fatalf("TotalMatches = %d, want 2", result.TotalMatches)
		}
		first := result.Matches[0]
		if first.Line != 2 || first.Start != 0 || first.End != 4 {
			t.Errorf("first match = %+v, want line 2 context 0-4", first)
		}
		last := result.Matches[1]
		if last.Line != 5 || last.End != 6 {
			t.Errorf("last match = %+v, context must clamp to file end", last)
		}
	})

	t.Run("adjacent contexts are not merged", func(t *testing.T) {
		lines := []string{"error one", "middle", "error two"}
		result, err := Search(lines, Options{Pattern: "error", Before: 1, After: 1, MaxTokens: 1000})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(result.Matches) != 2 {
			t.Fatalf("Matches = %d, want 2 independent blocks", len(result.Matches))
		}
		// Line 1 appears in both blocks; that overlap is deliberate.
		if result.Matches[0].End != 1 || result.Matches[1].Start != 1 {
			t.Errorf("blocks = %+v, want overlapping context", result.Matches)
		}
	})

	t.Run("skip drops leading matches", func(t *testing.T) {
		result, err := Search(logLines(), Options{Pattern: "error", Skip: 1, MaxTokens: 1000})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(result.Matches) != 1 || result.Matches[0].Line != 5 {
			t.Errorf("Matches = %+v, want only the second match", result.Matches)
		}
		if result.NextSkip() != 2 {
			t.Errorf("NextSkip() = %d, want 2", result.NextSkip())
		}
	})

	t.Run("skip past all matches is not an error", func(t *testing.T) {
		result, err := Search(logLines(), Options{Pattern: "error", Skip: 10, MaxTokens: 1000})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if result.TotalMatches != 2 || len(result.Matches) != 0 {
			t.Errorf("result = %+v, want total preserved with no matches emitted", result)
		}
	})

	t.Run("legacy maxMatches caps the page", func(t *testing.T) {
		lines := make([]string, 50)
		for i := range lines {
			lines[i] = fmt.Sprintf("error %d", i)
		}
		result, err := Search(lines, Options{Pattern: "error", MaxMatches: 5, MaxTokens: 1})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(result.Matches) != 5 {
			t.Errorf("Matches = %d, want maxMatches to override the token budget", len(result.Matches))
		}
		if result.Remaining != 45 {
			t.Errorf("Remaining = %d, want 45", result.Remaining)
		}
		if result.Mode != types.LineMode {
			t.Errorf("Mode = %q, want %q", result.Mode, types.LineMode)
		}
	})

	t.Run("token budget always admits the first match", func(t *testing.T) {
		lines := []string{strings.Repeat("error ", 200)}
		result, err := Search(lines, Options{Pattern: "error", MaxTokens: 1})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(result.Matches) != 1 {
			t.Errorf("Matches = %d, want the oversized first match", len(result.Matches))
		}
	})

	t.Run("token budget truncates later matches", func(t *testing.T) {
		lines := make([]string, 100)
		for i := range lines {
			lines[i] = fmt.Sprintf("error entry number %d", i)
		}
		result, err := Search(lines, Options{Pattern: "error", MaxTokens: 20})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(result.Matches) == 0 || result.Remaining == 0 {
			t.Errorf("Matches = %d Remaining = %d, want a truncated page", len(result.Matches), result.Remaining)
		}
		if len(result.Matches)+result.Remaining != 100 {
			t.Errorf("page + remaining = %d, want 100", len(result.Matches)+result.Remaining)
		}
	})

	t.Run("zero matches", func(t *testing.T) {
		result, err := Search(logLines(), Options{Pattern: "nope", MaxTokens: 1000})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if result.TotalMatches != 0 {
			t.Errorf("TotalMatches = %d, want 0", result.TotalMatches)
		}
	})
}

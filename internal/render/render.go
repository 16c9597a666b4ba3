// Package render turns the outcome of every operation into the single
// text block the tool call returns. Rendering never fails; upstream
// errors are reported by the handlers, not here.
package render

import (
	"fmt"
	"strings"

	"github.com/taigrr/log-mcp/internal/tokens"
	"github.com/taigrr/log-mcp/internal/types"
)

var (
	headerRule = strings.Repeat("=", 60)
	blockRule  = strings.Repeat("-", 60)
)

// Listing renders the list_log_files result: scanned directories, the
// sorted file list, then any per-directory warnings.
func Listing(dirs, files, warnings []string) string {
	var b strings.Builder

	if len(files) == 0 && len(warnings) == 0 {
		return "No log files found in any directory"
	}

	plural := "ies"
	if len(dirs) == 1 {
		plural = "y"
	}
	fmt.Fprintf(&b, "Scanning %d log director%s:\n", len(dirs), plural)
	for _, d := range dirs {
		fmt.Fprintf(&b, "  - %s\n", d)
	}

	fmt.Fprintf(&b, "\nFound %d log file(s):\n\n", len(files))
	b.WriteString(strings.Join(files, "\n"))

	if len(warnings) > 0 {
		b.WriteString("\n\nWarnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	return b.String()
}

// TruncateContent cuts content to the token budget at a line boundary when
// a nearby one exists. Breaking at the preceding newline is only worth it
// when it keeps at least 80% of the budget; otherwise the cut is mid-line.
// Returns the body, whether it was truncated, and the number of complete
// lines the body covers.
func TruncateContent(content string, maxTokens int) (string, bool, int) {
	budget := tokens.Budget(maxTokens)
	if len(content) <= budget {
		return content, false, strings.Count(content, "\n")
	}

	cut := budget
	if idx := strings.LastIndexByte(content[:budget], '\n'); idx >= (budget*4)/5 {
		cut = idx
	}
	body := content[:cut]
	return body, true, strings.Count(body, "\n")
}

// Content renders the get_log_content result, full or truncated.
func Content(info types.FileInfo, content string, maxTokens int) string {
	body, truncated, fullLines := TruncateContent(content, maxTokens)

	var b strings.Builder
	fmt.Fprintf(&b, "Content of %s (%d bytes, %d lines):\n\n", info.Path, info.Fingerprint.Size, info.TotalLines)
	b.WriteString(body)
	if truncated {
		fmt.Fprintf(&b, "\n\n[Truncated at ~%d token budget: showing %d of %d lines. Use read_log_paginated with startLine=%d to continue.]",
			maxTokens, fullLines, info.TotalLines, fullLines+1)
	}
	return b.String()
}

// StaleWarning describes a fingerprint mismatch between two paginated
// calls. Advisory only; the window that follows is still valid for the
// file as it is now.
func StaleWarning(expected, current types.Fingerprint) string {
	return fmt.Sprintf(
		"Warning: file changed since last read (size %d -> %d, mtime %d -> %d); line numbers may have shifted.",
		expected.Size, current.Size, expected.MTime, current.MTime)
}

// Window renders a read window with its metadata header. hint, when
// non-empty, names the parameters to pass to fetch the next window;
// stale, when non-empty, is prepended before the header.
func Window(info types.FileInfo, w types.ReadWindow, stale, hint string) string {
	var b strings.Builder

	if stale != "" {
		b.WriteString(stale)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "File: %s\n", info.Path)
	fmt.Fprintf(&b, "Size: %d bytes\n", info.Fingerprint.Size)
	fmt.Fprintf(&b, "Total lines: %d\n", w.TotalLines)
	if w.Count() == 0 {
		fmt.Fprintf(&b, "Showing lines: none (startLine %d is beyond the end of the file)\n", w.Start)
		return b.String()
	}
	fmt.Fprintf(&b, "Showing lines %d-%d (%s mode, ~%d tokens)\n", w.Start, w.End, w.Mode, w.Tokens)

	fmt.Fprintf(&b, "\n%s\n\n", headerRule)
	for i, line := range w.Lines {
		fmt.Fprintf(&b, "%6d | %s\n", w.Start+i, line)
	}

	if !w.Complete() && hint != "" {
		remaining := w.TotalLines - w.End
		fmt.Fprintf(&b, "\n... %d more lines available (%s) ...", remaining, hint)
	}

	return b.String()
}

// Search renders a pattern search result. The two empty outcomes are
// distinct: no matches at all, and a page past the end of the match list.
func Search(info types.FileInfo, lines []string, r types.SearchResult) string {
	if r.TotalMatches == 0 {
		return fmt.Sprintf("No matches found for pattern: %s", r.Pattern)
	}
	if len(r.Matches) == 0 {
		return fmt.Sprintf("No more matches (total: %d, skipped: %d)", r.TotalMatches, r.Skipped)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", info.Path)
	fmt.Fprintf(&b, "Pattern: %s\n", r.Pattern)
	fmt.Fprintf(&b, "Total matches: %d\n", r.TotalMatches)
	fmt.Fprintf(&b, "Showing matches %d-%d (~%d tokens)\n", r.Skipped+1, r.Skipped+len(r.Matches), r.Tokens)
	fmt.Fprintf(&b, "Context: %d before, %d after\n", r.Before, r.After)

	fmt.Fprintf(&b, "\n%s\n\n", headerRule)
	for _, m := range r.Matches {
		for i := m.Start; i <= m.End; i++ {
			b.WriteString(prefixed(i, i == m.Line, lines[i]))
		}
		fmt.Fprintf(&b, "\n%s\n\n", blockRule)
	}

	if r.Remaining > 0 {
		fmt.Fprintf(&b, "... %d more matches available (use skipMatches=%d) ...", r.Remaining, r.NextSkip())
	}

	return strings.TrimRight(b.String(), "\n")
}

// ErrorScan renders a heuristic scan result. Hit lines are marked even
// when they fall inside an earlier block's context.
func ErrorScan(info types.FileInfo, lines []string, r types.ScanResult) string {
	if r.TotalHits == 0 {
		if r.IncludeWarnings {
			return fmt.Sprintf("No likely error or warning lines found in %s", info.Path)
		}
		return fmt.Sprintf("No likely error lines found in %s", info.Path)
	}

	hitSet := make(map[int]bool, len(r.Hits))
	for _, h := range r.Hits {
		hitSet[h] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", info.Path)
	fmt.Fprintf(&b, "Size: %d bytes\n", info.Fingerprint.Size)
	fmt.Fprintf(&b, "Total lines: %d\n", info.TotalLines)
	scope := "errors"
	if r.IncludeWarnings {
		scope = "errors and warnings"
	}
	fmt.Fprintf(&b, "Flagged lines (%s): %d\n", scope, r.TotalHits)
	fmt.Fprintf(&b, "Showing %d of %d (context %d, ~%d tokens)\n", r.Shown(), r.TotalHits, r.Context, r.Tokens)

	fmt.Fprintf(&b, "\n%s\n\n", headerRule)
	printed := false
	for _, block := range r.Blocks {
		if len(block.Lines) == 0 {
			continue
		}
		if printed {
			fmt.Fprintf(&b, "\n%s\n\n", blockRule)
		}
		for _, i := range block.Lines {
			b.WriteString(prefixed(i, hitSet[i], lines[i]))
		}
		printed = true
	}

	if r.Remaining > 0 {
		fmt.Fprintf(&b, "\n\n... %d more flagged lines available (raise maxTokens or lower contextLines) ...", r.Remaining)
	}

	return b.String()
}

// prefixed formats one body line: a three-character match marker, a
// fixed-width 1-based line number and the line itself.
func prefixed(index int, marked bool, line string) string {
	marker := "   "
	if marked {
		marker = ">>>"
	}
	return fmt.Sprintf("%s %6d | %s\n", marker, index+1, line)
}

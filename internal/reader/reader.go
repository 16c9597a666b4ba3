// Package reader implements the shared line-windowing engine behind the
// head, tail, range and paginated read operations: emit a contiguous run
// of lines under a budget, and report where to continue.
package reader

import (
	"fmt"

	"github.com/taigrr/log-mcp/internal/tokens"
	"github.com/taigrr/log-mcp/internal/types"
)

// ArgumentError reports a read parameter outside its documented bounds.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// budgetForward returns how many lines starting at lines[start] fit within
// maxTokens. The first line is always taken, even when it alone exceeds
// the budget; a zero-line window would leave the caller stuck.
func budgetForward(lines []string, start, maxTokens int) (count, chars int) {
	for i := start; i < len(lines); i++ {
		cost := len(lines[i]) + 1
		if count > 0 && (chars+cost)/tokens.CharsPerToken > maxTokens {
			break
		}
		chars += cost
		count++
	}
	return count, chars
}

// Head emits lines from the top of the file. An explicit maxLines
// overrides the token budget entirely; otherwise the budget decides.
func Head(lines []string, maxLines, maxTokens int) types.ReadWindow {
	if maxLines > 0 {
		n := min(maxLines, len(lines))
		return window(lines, 0, n, types.LineMode)
	}
	n, _ := budgetForward(lines, 0, maxTokens)
	return window(lines, 0, n, types.TokenMode)
}

// Tail emits the end of the file in forward order. In token mode lines
// are accumulated from the last line backward until the budget binds.
func Tail(lines []string, maxLines, maxTokens int) types.ReadWindow {
	total := len(lines)
	if maxLines > 0 {
		n := min(maxLines, total)
		return window(lines, total-n, n, types.LineMode)
	}

	count, chars := 0, 0
	for i := total - 1; i >= 0; i-- {
		cost := len(lines[i]) + 1
		if count > 0 && (chars+cost)/tokens.CharsPerToken > maxTokens {
			break
		}
		chars += cost
		count++
	}
	w := window(lines, total-count, count, types.TokenMode)
	// A tail always reaches the end of the file; there is nothing after it.
	w.NextStart = 0
	return w
}

// Range emits lines [startLine, endLine] (1-based, inclusive), stopping
// early if the token budget is exhausted. endLine <= 0 means end of file.
func Range(lines []string, startLine, endLine, maxTokens int) (types.ReadWindow, error) {
	total := len(lines)
	if startLine > total {
		return types.ReadWindow{}, &ArgumentError{
			Message: fmt.Sprintf("startLine %d exceeds file length (%d lines)", startLine, total),
		}
	}
	if endLine <= 0 || endLine > total {
		endLine = total
	}
	if endLine < startLine {
		return types.ReadWindow{}, &ArgumentError{
			Message: fmt.Sprintf("endLine %d is before startLine %d", endLine, startLine),
		}
	}

	requested := lines[startLine-1 : endLine]
	n, _ := budgetForward(requested, 0, maxTokens)
	w := window(lines, startLine-1, n, types.TokenMode)
	if startLine-1+n >= endLine {
		// Reached the requested end even if the file continues.
		w.NextStart = 0
	}
	return w, nil
}

// Paginated reads from startLine under either the legacy numLines mode
// (when numLines > 0, overriding the token budget) or the token budget.
// A startLine past the end of the file yields an empty window rather than
// an error so pagination loops terminate cleanly.
func Paginated(lines []string, startLine, numLines, maxTokens int) types.ReadWindow {
	total := len(lines)
	if startLine > total {
		return types.ReadWindow{
			Start:      startLine,
			End:        startLine - 1,
			TotalLines: total,
			Mode:       modeFor(numLines),
		}
	}

	if numLines > 0 {
		n := min(numLines, total-startLine+1)
		return window(lines, startLine-1, n, types.LineMode)
	}
	n, _ := budgetForward(lines, startLine-1, maxTokens)
	return window(lines, startLine-1, n, types.TokenMode)
}

func modeFor(numLines int) string {
	if numLines > 0 {
		return types.LineMode
	}
	return types.TokenMode
}

// window builds a ReadWindow for count lines starting at index start.
func window(lines []string, start, count int, mode string) types.ReadWindow {
	emitted := lines[start : start+count]
	w := types.ReadWindow{
		Lines:      emitted,
		Start:      start + 1,
		End:        start + count,
		TotalLines: len(lines),
		Tokens:     tokens.EstimateLines(emitted),
		Mode:       mode,
	}
	if start+count < len(lines) {
		w.NextStart = start + count + 1
	}
	return w
}

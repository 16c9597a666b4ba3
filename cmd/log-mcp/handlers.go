package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/log-mcp/internal/errscan"
	"github.com/taigrr/log-mcp/internal/logfile"
	"github.com/taigrr/log-mcp/internal/reader"
	"github.com/taigrr/log-mcp/internal/render"
	"github.com/taigrr/log-mcp/internal/searcher"
	"github.com/taigrr/log-mcp/internal/types"
)

func errResult(err error) (*mcp.CallToolResult, TextOutput, error) {
	return &mcp.CallToolResult{IsError: true}, TextOutput{}, err
}

func textResult(text string) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: text}, nil
}

// resolveAndLoad places filename inside the permitted directories and
// loads the file's lines.
func resolveAndLoad(filename string) ([]string, types.FileInfo, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, types.FileInfo{}, fmt.Errorf("filename parameter is required")
	}
	resolved, err := logfile.Resolve(strings.TrimSpace(filename), cfg.Directories)
	if err != nil {
		return nil, types.FileInfo{}, err
	}
	return logfile.Load(resolved.Path)
}

// checkMaxTokens applies the shared default and bounds for token budgets.
func checkMaxTokens(maxTokens int) (int, error) {
	if maxTokens == 0 {
		return defaultMaxTokens, nil
	}
	if maxTokens < 1 || maxTokens > maxMaxTokens {
		return 0, fmt.Errorf("maxTokens must be between 1 and %d", maxMaxTokens)
	}
	return maxTokens, nil
}

// checkContext validates a context-line count, falling back to def when
// the field was omitted.
func checkContext(name string, value *int, def int) (int, error) {
	if value == nil {
		return def, nil
	}
	if *value < 0 || *value > maxContextLines {
		return 0, fmt.Errorf("%s must be between 0 and %d", name, maxContextLines)
	}
	return *value, nil
}

func handleListLogFiles(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, TextOutput, error) {
	files, warnings := logfile.List(cfg.Directories)
	return textResult(render.Listing(cfg.Directories, files, warnings))
}

func handleGetLogContent(ctx context.Context, req *mcp.CallToolRequest, input ContentInput) (*mcp.CallToolResult, TextOutput, error) {
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	if strings.TrimSpace(input.Filename) == "" {
		return errResult(fmt.Errorf("filename parameter is required"))
	}
	resolved, err := logfile.Resolve(strings.TrimSpace(input.Filename), cfg.Directories)
	if err != nil {
		return errResult(err)
	}
	content, fp, err := logfile.Read(resolved.Path)
	if err != nil {
		return errResult(err)
	}

	info := types.FileInfo{
		Path:        resolved.Path,
		Fingerprint: fp,
		TotalLines:  len(logfile.SplitLines(content)),
	}
	return textResult(render.Content(info, content, maxTokens))
}

func handleReadLogPaginated(ctx context.Context, req *mcp.CallToolRequest, input PaginatedInput) (*mcp.CallToolResult, TextOutput, error) {
	startLine := input.StartLine
	if startLine == 0 {
		startLine = 1
	}
	if startLine < 1 {
		return errResult(fmt.Errorf("startLine must be >= 1"))
	}
	if input.NumLines != 0 && (input.NumLines < 1 || input.NumLines > maxNumLines) {
		return errResult(fmt.Errorf("numLines must be between 1 and %d", maxNumLines))
	}
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	lines, info, err := resolveAndLoad(input.Filename)
	if err != nil {
		return errResult(err)
	}

	// The fingerprint is advisory: a mismatch warns, it never fails.
	var stale string
	if input.ExpectedSize != 0 || input.ExpectedMtime != 0 {
		expected := types.Fingerprint{Size: input.ExpectedSize, MTime: input.ExpectedMtime}
		if !expected.Matches(info.Fingerprint) {
			stale = render.StaleWarning(expected, info.Fingerprint)
		}
	}

	w := reader.Paginated(lines, startLine, input.NumLines, maxTokens)
	hint := fmt.Sprintf("use startLine=%d, expectedSize=%d, expectedMtime=%d",
		w.NextStart, info.Fingerprint.Size, info.Fingerprint.MTime)
	return textResult(render.Window(info, w, stale, hint))
}

func handleReadLogRange(ctx context.Context, req *mcp.CallToolRequest, input RangeInput) (*mcp.CallToolResult, TextOutput, error) {
	if input.StartLine < 1 {
		return errResult(fmt.Errorf("startLine must be >= 1"))
	}
	if input.EndLine != 0 && input.EndLine < input.StartLine {
		return errResult(fmt.Errorf("endLine must be >= startLine"))
	}
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	lines, info, err := resolveAndLoad(input.Filename)
	if err != nil {
		return errResult(err)
	}

	w, err := reader.Range(lines, input.StartLine, input.EndLine, maxTokens)
	if err != nil {
		return errResult(err)
	}
	hint := fmt.Sprintf("use startLine=%d", w.NextStart)
	return textResult(render.Window(info, w, "", hint))
}

func handleHeadLog(ctx context.Context, req *mcp.CallToolRequest, input HeadInput) (*mcp.CallToolResult, TextOutput, error) {
	if input.Lines < 0 {
		return errResult(fmt.Errorf("lines must be >= 1"))
	}
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	lines, info, err := resolveAndLoad(input.Filename)
	if err != nil {
		return errResult(err)
	}

	w := reader.Head(lines, input.Lines, maxTokens)
	hint := fmt.Sprintf("use read_log_paginated with startLine=%d", w.NextStart)
	return textResult(render.Window(info, w, "", hint))
}

func handleTailLog(ctx context.Context, req *mcp.CallToolRequest, input TailInput) (*mcp.CallToolResult, TextOutput, error) {
	if input.Lines < 0 {
		return errResult(fmt.Errorf("lines must be >= 1"))
	}
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	lines, info, err := resolveAndLoad(input.Filename)
	if err != nil {
		return errResult(err)
	}

	w := reader.Tail(lines, input.Lines, maxTokens)
	return textResult(render.Window(info, w, "", ""))
}

func handleSearchLogFile(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, TextOutput, error) {
	if strings.TrimSpace(input.Pattern) == "" {
		return errResult(fmt.Errorf("pattern parameter is required"))
	}

	contextLines, err := checkContext("contextLines", input.ContextLines, defaultContextSize)
	if err != nil {
		return errResult(err)
	}
	before, err := checkContext("contextBefore", input.ContextBefore, contextLines)
	if err != nil {
		return errResult(err)
	}
	after, err := checkContext("contextAfter", input.ContextAfter, contextLines)
	if err != nil {
		return errResult(err)
	}
	if input.MaxMatches != 0 && (input.MaxMatches < 1 || input.MaxMatches > maxMaxMatches) {
		return errResult(fmt.Errorf("maxMatches must be between 1 and %d", maxMaxMatches))
	}
	if input.SkipMatches < 0 {
		return errResult(fmt.Errorf("skipMatches must be >= 0"))
	}
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	lines, info, err := resolveAndLoad(input.Filename)
	if err != nil {
		return errResult(err)
	}

	result, err := searcher.Search(lines, searcher.Options{
		Pattern:       input.Pattern,
		CaseSensitive: input.CaseSensitive,
		Before:        before,
		After:         after,
		Skip:          input.SkipMatches,
		MaxMatches:    input.MaxMatches,
		MaxTokens:     maxTokens,
	})
	if err != nil {
		return errResult(err)
	}
	return textResult(render.Search(info, lines, result))
}

func handleFindErrors(ctx context.Context, req *mcp.CallToolRequest, input FindErrorsInput) (*mcp.CallToolResult, TextOutput, error) {
	contextLines, err := checkContext("contextLines", input.ContextLines, defaultContextSize)
	if err != nil {
		return errResult(err)
	}
	maxTokens, err := checkMaxTokens(input.MaxTokens)
	if err != nil {
		return errResult(err)
	}

	lines, info, err := resolveAndLoad(input.Filename)
	if err != nil {
		return errResult(err)
	}

	result := errscan.Scan(lines, contextLines, input.IncludeWarnings, maxTokens)
	return textResult(render.ErrorScan(info, lines, result))
}

package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Parameter bounds and defaults shared by the tool handlers.
const (
	defaultMaxTokens   = 4000
	maxMaxTokens       = 100000
	maxNumLines        = 1000
	maxMaxMatches      = 500
	maxContextLines    = 10
	defaultContextSize = 2
)

type (
	// TextOutput is the single text block every tool returns.
	TextOutput struct {
		Text string `json:"text"`
	}

	// ListInput contains parameters for listing log files (none).
	ListInput struct{}

	// ContentInput contains parameters for reading a whole log file.
	ContentInput struct {
		Filename  string `json:"filename" jsonschema:"Name of the log file to read"`
		MaxTokens int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
	}

	// PaginatedInput contains parameters for a paginated read.
	PaginatedInput struct {
		Filename      string `json:"filename" jsonschema:"Name of the log file to read"`
		StartLine     int    `json:"startLine,omitempty" jsonschema:"Starting line number, 1-based (default: 1)"`
		MaxTokens     int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
		NumLines      int    `json:"numLines,omitempty" jsonschema:"Exact number of lines to read (1-1000); overrides maxTokens when given"`
		ExpectedSize  int64  `json:"expectedSize,omitempty" jsonschema:"File size from the previous call, to detect concurrent modification"`
		ExpectedMtime int64  `json:"expectedMtime,omitempty" jsonschema:"File mtime (unix seconds) from the previous call, to detect concurrent modification"`
	}

	// RangeInput contains parameters for reading a line range.
	RangeInput struct {
		Filename  string `json:"filename" jsonschema:"Name of the log file to read"`
		StartLine int    `json:"startLine" jsonschema:"First line to read, 1-based"`
		EndLine   int    `json:"endLine,omitempty" jsonschema:"Last line to read, inclusive (default: end of file)"`
		MaxTokens int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
	}

	// HeadInput contains parameters for reading the start of a file.
	HeadInput struct {
		Filename  string `json:"filename" jsonschema:"Name of the log file to read"`
		Lines     int    `json:"lines,omitempty" jsonschema:"Exact number of lines to read; overrides maxTokens when given"`
		MaxTokens int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
	}

	// TailInput contains parameters for reading the end of a file.
	TailInput struct {
		Filename  string `json:"filename" jsonschema:"Name of the log file to read"`
		Lines     int    `json:"lines,omitempty" jsonschema:"Exact number of lines to read; overrides maxTokens when given"`
		MaxTokens int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
	}

	// SearchInput contains parameters for regex search within a file.
	SearchInput struct {
		Filename      string `json:"filename" jsonschema:"Name of the log file to search"`
		Pattern       string `json:"pattern" jsonschema:"Regex pattern to search for"`
		ContextLines  *int   `json:"contextLines,omitempty" jsonschema:"Lines of context before and after each match (0-10, default: 2)"`
		ContextBefore *int   `json:"contextBefore,omitempty" jsonschema:"Context lines before each match (0-10); overrides contextLines"`
		ContextAfter  *int   `json:"contextAfter,omitempty" jsonschema:"Context lines after each match (0-10); overrides contextLines"`
		CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Case-sensitive matching (default: false)"`
		MaxTokens     int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
		MaxMatches    int    `json:"maxMatches,omitempty" jsonschema:"Exact match cap (1-500); overrides maxTokens when given"`
		SkipMatches   int    `json:"skipMatches,omitempty" jsonschema:"Number of matches to skip, for pagination (default: 0)"`
	}

	// FindErrorsInput contains parameters for the heuristic error scan.
	FindErrorsInput struct {
		Filename        string `json:"filename" jsonschema:"Name of the log file to scan"`
		ContextLines    *int   `json:"contextLines,omitempty" jsonschema:"Lines of context around each flagged line (0-10, default: 2)"`
		IncludeWarnings bool   `json:"includeWarnings,omitempty" jsonschema:"Also flag warning-level lines (default: false)"`
		MaxTokens       int    `json:"maxTokens,omitempty" jsonschema:"Approximate token budget for the response (default: 4000, max: 100000)"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_log_files",
		Description: "Lists all log files across the permitted log directories. Use this FIRST when the user reports errors or problems, to see which logs are available for inspection.",
	}, handleListLogFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_log_content",
		Description: "Returns the content of a log file, truncated at a line boundary if it exceeds the token budget. For large files prefer read_log_paginated.",
	}, handleGetLogContent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_log_paginated",
		Description: "Reads a token-budgeted window of a log file starting at a given line. Pass back the reported startLine, expectedSize and expectedMtime to continue; a changed file is flagged with a staleness warning.",
	}, handleReadLogPaginated)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_log_range",
		Description: "Reads a specific line range of a log file, stopping early if the token budget is exhausted.",
	}, handleReadLogRange)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "head_log",
		Description: "Reads the beginning of a log file, bounded by a line count or a token budget.",
	}, handleHeadLog)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tail_log",
		Description: "Reads the end of a log file, bounded by a line count or a token budget. Lines are returned in their original order.",
	}, handleTailLog)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_log_file",
		Description: "Searches a log file with a regex pattern and returns matching lines with surrounding context. Use skipMatches to page through a long match list.",
	}, handleSearchLogFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_errors",
		Description: "Scans a log file with a fixed set of heuristic error patterns (severity keywords, exceptions, panics, HTTP 5xx, assertion failures) and returns the flagged lines with context.",
	}, handleFindErrors)
}

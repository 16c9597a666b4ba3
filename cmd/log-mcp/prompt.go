package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "runtime-logs",
		Description: "Information about runtime log inspection capabilities",
	}, handleRuntimeLogsPrompt)
}

func handleRuntimeLogsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var dirs strings.Builder
	for _, d := range cfg.Directories {
		fmt.Fprintf(&dirs, "  - %s\n", d)
	}

	message := fmt.Sprintf(`# Runtime Log Inspection Available

This MCP server provides access to log files stored in:
%s
## Important: When to Use Log Inspection

**ALWAYS check logs when:**
- The user reports errors or problems with their code
- There are runtime failures, crashes, or unexpected behavior
- The user mentions something "not working" or "failing"
- You need to understand what happened during execution

## Available Tools

1. **list_log_files** - Lists all available log files
2. **head_log** / **tail_log** - Read the start or end of a file
3. **get_log_content** - Read a whole file (small files)
4. **read_log_paginated** / **read_log_range** - Read bounded windows of large files
5. **search_log_file** - Regex search with surrounding context
6. **find_errors** - Heuristic scan for likely failure lines

## Recommended Workflow

1. Use list_log_files to see what is available
2. Use find_errors or tail_log on the relevant file
3. Narrow down with search_log_file and read_log_range
4. Base your diagnosis on the actual log lines found

Every response is bounded by a token budget; follow the continuation
hints at the end of a truncated response to fetch the next window.`, dirs.String())

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: message},
			},
		},
	}, nil
}

// Package main implements the MCP server for inspecting log files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/taigrr/log-mcp/internal/config"
)

var (
	logDirs []string
	cfg     config.Config
)

func main() {
	cmd := &cobra.Command{
		Use:   "log-mcp",
		Short: "MCP server for inspecting log files",
		Long: `log-mcp is a Model Context Protocol (MCP) server that lets an
AI harness list, read, paginate and search log files without
pulling unbounded content into its context window. Every read
and search operation is bounded by an approximate token budget.

Log directory priority (highest to lowest):
  1. --log-dir flags (repeatable)
  2. LOG_MCP_DIR environment variable (colon-separated paths)
  3. $XDG_RUNTIME_DIR/log`,
		Example: `log-mcp
log-mcp --log-dir /var/log
log-mcp --log-dir /var/log --log-dir /tmp/logs
LOG_MCP_DIR=/var/log:/tmp/logs log-mcp`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
	cmd.Flags().StringArrayVar(&logDirs, "log-dir", nil,
		"log directory to search (can be specified multiple times)")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP transport; diagnostics go to stderr.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var err error
	cfg, err = config.Resolve(logDirs)
	if err != nil {
		return err
	}

	if len(logDirs) > 0 {
		for _, dir := range cfg.Missing() {
			logger.Warn().Str("dir", dir).Msg("log directory does not exist")
		}
	}
	logger.Info().Strs("dirs", cfg.Directories).Msg("serving log directories")

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "log-mcp",
		Version: version,
	}, nil)

	registerTools(server)
	registerPrompts(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}

// Package cmd wires the CLI surface around the serve loop. The stub
// is meant to be spawned by an MCP client with no arguments; every
// flag here is optional and leaves the default wire behavior intact.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/githubnext/gh-aw-mcp-stub/internal/config"
	"github.com/githubnext/gh-aw-mcp-stub/internal/logger"
	"github.com/githubnext/gh-aw-mcp-stub/internal/server"
	"github.com/githubnext/gh-aw-mcp-stub/internal/stub"
	"github.com/githubnext/gh-aw-mcp-stub/internal/tty"
)

var (
	configFile string
	debugLog   = logger.New("cmd:root")
	version    = "dev" // Default version, overridden by SetVersion
)

var rootCmd = &cobra.Command{
	Use:     "awms",
	Short:   "MCP protocol-conformance stub server",
	Version: version,
	Long: `awms is a protocol-conformance stub for Model Context Protocol clients.
It speaks line-delimited JSON-RPC 2.0 over stdin/stdout and exposes four
fixed tools (echo, add, environment, fail) so a client's transport and
error-handling paths can be exercised without a real backend.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Optional TOML file overriding the server identity")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	debugLog.Printf("Starting stub, config=%q", configFile)

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The two startup diagnostic lines a conformance harness may
	// redirect and inspect. They must go to stderr, never stdout.
	log.Printf("%s: starting server initialization", cfg.ServerName)
	registry := stub.Default()
	log.Printf("%s: initialization complete, serving %d tools on stdio", cfg.ServerName, registry.Len())

	if tty.Interactive() {
		log.Print("stdin/stdout are terminals; expecting one JSON-RPC document per line (Ctrl-D to exit)")
	}

	// An interrupt abandons the loop without emitting further output.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
		os.Exit(0)
	}()

	srv := server.NewStdio(cfg, registry, os.Stdin, os.Stdout)
	if err := srv.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve: %w", err)
	}

	debugLog.Print("input stream closed, exiting")
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

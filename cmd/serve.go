package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/teemow/mailsift/internal/instrumentation"
	"github.com/teemow/mailsift/internal/server"
	"github.com/teemow/mailsift/internal/tools/extract_tools"
	"github.com/teemow/mailsift/internal/tools/google_tools"
)

func newServeCmd() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdio",
		Long: `Start an MCP (Model Context Protocol) server that exposes Gmail search
and attachment text extraction as tools for AI assistants.

The server communicates over stdio. When instrumentation is configured with
the prometheus exporter, metrics are served on a separate HTTP port.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), metricsAddr)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the Prometheus metrics endpoint")
	return cmd
}

func runServe(ctx context.Context, metricsAddr string) error {
	shutdownCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during instrumentation shutdown: %v", err)
		}
	}()

	// Metrics get their own listener; stdout on an MCP stdio server belongs
	// to the protocol.
	var metricsServer *server.MetricsServer
	if provider.Enabled() && instrConfig.MetricsExporter == instrumentation.ExporterPrometheus {
		metricsServer, err = server.NewMetricsServer(metricsAddr, provider)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				log.Printf("Metrics server failed: %v", err)
			}
		}()
	}

	serverContext, err := server.NewServerContext(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		serverContext.Shutdown()
	}()

	mcpSrv := mcpserver.NewMCPServer("mailsift", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := google_tools.RegisterGoogleTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register Google OAuth tools: %w", err)
	}
	if err := extract_tools.RegisterExtractTools(mcpSrv, serverContext, provider.Metrics()); err != nil {
		return fmt.Errorf("failed to register extraction tools: %w", err)
	}

	return runStdioServer(mcpSrv)
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"paperdesk/internal/db"
	"paperdesk/internal/llm"
	"paperdesk/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paperdesk web and API server",
	Long:  `Starts the paperdesk server with the HTML views, the JSON API and the drafting WebSocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// A missing provider is not fatal; the pipeline degrades to
		// its deterministic fallbacks.
		var provider llm.Provider
		if p, err := createProvider(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no LLM provider available, using fallback content: %v\n", err)
		} else {
			provider = p
		}

		embedder, err := createEmbedder(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no embedder available, ranking is lexical only: %v\n", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "paperdesk.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		searcher := buildSearchService(cfg, embedder)
		srv := server.New(server.Config{
			Port:     servePort,
			AllowAll: true,
		}, database, provider, cfg.Model, searcher)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "paperdesk v%s starting on port %d\n", Version, servePort)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

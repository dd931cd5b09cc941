package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ddanielcruz/numbertrivia/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the trivia API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig > %w", err)
			}

			repository, closer, err := newRepository(cfg)
			if err != nil {
				return fmt.Errorf("newRepository > %w", err)
			}
			defer func() {
				_ = closer()
			}()

			mux := http.NewServeMux()
			server.NewTriviaHandler(repository).Register(mux)

			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			slog.Default().Info("Starting server", "addr", addr)
			return http.ListenAndServe(addr, server.CORSMiddleware(cfg.Server.CORS.AllowedOrigins, mux))
		},
	}
}

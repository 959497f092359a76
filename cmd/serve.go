package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SubhankarA8415/portfolio/internal/content"
	"github.com/SubhankarA8415/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `serve renders the portfolio with gin. With --watch the content file is
reloaded whenever it changes; a file that fails to load is reported and the
previous content keeps being served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := content.NewStore(cfg.Content, log)
		if err != nil {
			return err
		}

		if cfg.Watch {
			go func() {
				if err := store.Watch(ctx); err != nil {
					log.Warn("content watch disabled", "error", err)
				}
			}()
		}

		srv, err := server.New(cfg, store, log)
		if err != nil {
			return err
		}
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
	serveCmd.Flags().Bool("watch", false, "reload the content file on change")
	rootCmd.AddCommand(serveCmd)
}

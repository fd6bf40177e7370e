package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/moodline/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen == "" {
				listen = app.cfg.Listen
			}

			svc, err := app.newService(nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.logger.Info("pipeline ready", "classifier", app.cfg.Classifier.Provider, "audio", app.transcriber != nil)
			return httpapi.NewServer(svc, app.logger).ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default: server.listen)")

	return cmd
}

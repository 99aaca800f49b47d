package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numvalid/pkg/checkapi"
	"github.com/dmitrymomot/numvalid/pkg/environment"
	"github.com/dmitrymomot/numvalid/pkg/httpserver"
	"github.com/dmitrymomot/numvalid/pkg/logger"
	"github.com/dmitrymomot/numvalid/pkg/requestid"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP check API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := environment.Parse(a.cfg.Env)
			log := logger.New(
				logger.WithOutput(a.stderr),
				logger.WithEnvironment(env, a.cfg.Name),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			registry, err := a.registry(cmd.Context())
			if err != nil {
				log.ErrorContext(cmd.Context(), "failed to load profiles", logger.Error(err))
				return err
			}
			log.InfoContext(cmd.Context(), "profiles loaded", logger.Count(registry.Len()))

			router := checkapi.Router(a.cfg.Check, registry, log, env)
			srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), router)
		},
	}
}

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyblock/hyblock-backend/internal/config"
	"github.com/hyblock/hyblock-backend/internal/db"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
	"github.com/hyblock/hyblock-backend/internal/observability/tracing"
	"github.com/hyblock/hyblock-backend/internal/services"
)

func RecomputeRankingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recompute-rankings",
		Short: "Rebuilds the top-100 collection rank snapshot from stored metrics",
		Args:  cobra.ExactArgs(0),
		RunE:  recomputeRankings,
	}

	return cmd
}

func recomputeRankings(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("error while loading config file: %s", cfgPath)
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	metrics.Init(cfg.Metrics.GetMetricsPort())

	service := services.NewService(cfg, dbClient, nil, nil)

	written, err := service.RecomputeRankings(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("ranked", written).Msg("rank snapshot rebuilt")
	return nil
}

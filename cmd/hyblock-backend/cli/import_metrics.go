package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyblock/hyblock-backend/internal/config"
	"github.com/hyblock/hyblock-backend/internal/db"
	dbmodel "github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
	"github.com/hyblock/hyblock-backend/internal/observability/tracing"
	"github.com/hyblock/hyblock-backend/internal/services"
)

func ImportMetricsCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "import-metrics",
		Short: "Imports a collection-metrics feed file into the raw metrics store",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importMetrics(cmd, inputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the metrics JSON file")
	//nolint:errcheck
	cmd.MarkFlagRequired("input")

	return cmd
}

func importMetrics(cmd *cobra.Command, inputPath string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("error while loading config file: %s", cfgPath)
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		log.Fatal().Err(err).Msg("error while setting up db model")
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}

	metrics.Init(cfg.Metrics.GetMetricsPort())

	service := services.NewService(cfg, dbClient, nil, nil)

	imported, err := service.ImportCollectionMetrics(ctx, inputPath)
	if err != nil {
		return err
	}

	log.Info().Int("collections", imported).Msg("metrics file imported")
	return nil
}

package cli

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyblock/hyblock-backend/internal/api"
	"github.com/hyblock/hyblock-backend/internal/clients/marketplaceclient"
	"github.com/hyblock/hyblock-backend/internal/clients/xrplclient"
	"github.com/hyblock/hyblock-backend/internal/config"
	"github.com/hyblock/hyblock-backend/internal/db"
	dbmodel "github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
	"github.com/hyblock/hyblock-backend/internal/observability/tracing"
	"github.com/hyblock/hyblock-backend/internal/services"
)

const (
	dbProbeAttempts = 5
	dbProbeDelay    = time.Second
	dbProbeTimeout  = 5 * time.Second
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the hyblock NFT backend server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("error while loading config file: %s", cfgPath)
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		log.Fatal().Err(err).Msg("error while setting up db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	// startup probe only; request-path calls stay single-attempt
	err = retry.Do(func() error {
		probeCtx, cancel := context.WithTimeout(ctx, dbProbeTimeout)
		defer cancel()
		return dbClient.Ping(probeCtx)
	},
		retry.Context(ctx),
		retry.Attempts(dbProbeAttempts),
		retry.Delay(dbProbeDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("db is unreachable")
	}

	var xrplClient xrplclient.XrplInterface
	xrplClient, err = xrplclient.NewClient(&cfg.Xrpl)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating XRPL client")
	}
	xrplClient = xrplclient.NewXrplClientWithMetrics(xrplClient)

	marketplaceClient := marketplaceclient.NewClient(&cfg.Marketplace)

	service := services.NewService(cfg, dbClient, xrplClient, marketplaceClient)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	server := api.New(cfg, service, xrplClient, dbClient)
	return server.Start(ctx)
}

package services

import (
	"github.com/hyblock/hyblock-backend/internal/clients/marketplaceclient"
	"github.com/hyblock/hyblock-backend/internal/clients/xrplclient"
	"github.com/hyblock/hyblock-backend/internal/config"
	"github.com/hyblock/hyblock-backend/internal/db"
)

type Service struct {
	cfg         *config.Config
	db          db.DbInterface
	xrpl        xrplclient.XrplInterface
	marketplace marketplaceclient.MarketplaceInterface
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	xrpl xrplclient.XrplInterface,
	marketplace marketplaceclient.MarketplaceInterface,
) *Service {
	return &Service{
		cfg:         cfg,
		db:          db,
		xrpl:        xrpl,
		marketplace: marketplace,
	}
}

package xrplclient

import (
	"context"
	"time"

	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
)

type XrplClientWithMetrics struct {
	xrpl XrplInterface
}

func NewXrplClientWithMetrics(xrpl XrplInterface) *XrplClientWithMetrics {
	return &XrplClientWithMetrics{xrpl: xrpl}
}

func (c *XrplClientWithMetrics) GetAccountNfts(ctx context.Context, walletAddress string) ([]NftRecord, error) {
	start := time.Now()
	nfts, err := c.xrpl.GetAccountNfts(ctx, walletAddress)
	metrics.RecordXrplClientLatency(time.Since(start), "GetAccountNfts", err != nil)
	return nfts, err
}

func (c *XrplClientWithMetrics) TransferTokens(ctx context.Context, destinationAddress string, amount int64) (*TransactionReceipt, error) {
	start := time.Now()
	receipt, err := c.xrpl.TransferTokens(ctx, destinationAddress, amount)
	metrics.RecordXrplClientLatency(time.Since(start), "TransferTokens", err != nil)
	return receipt, err
}

func (c *XrplClientWithMetrics) DeriveAddress(seed string) (string, error) {
	return c.xrpl.DeriveAddress(seed)
}

package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
	"github.com/hyblock/hyblock-backend/internal/types"
)

// ResolveBet settles a finished game round. A win pays out the bet amount in
// the configured issued currency from the system wallet to the address
// derived from the user's seed; a loss touches the ledger not at all.
func (s *Service) ResolveBet(ctx context.Context, userWalletSeed string, betAmount int64, userWon bool) (*types.SettlementResult, error) {
	if !userWon {
		metrics.IncSettlementResolved("lost")
		return &types.SettlementResult{
			Result: types.SettlementResultLost,
			Payout: types.NoPayout,
		}, nil
	}

	destination, err := s.xrpl.DeriveAddress(userWalletSeed)
	if err != nil {
		return nil, err
	}

	receipt, err := s.xrpl.TransferTokens(ctx, destination, betAmount)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("destination", destination).
		Int64("bet_amount", betAmount).
		Msg("bet settled with payout")

	metrics.IncSettlementResolved("won")
	return &types.SettlementResult{
		Result: types.SettlementResultWon,
		Payout: receipt,
	}, nil
}

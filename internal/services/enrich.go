package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyblock/hyblock-backend/internal/db"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
	"github.com/hyblock/hyblock-backend/internal/types"
)

// GetEnrichedNfts lists the NFTs a wallet owns and enriches each one
// concurrently. A nil result with nil error means the wallet holds no NFTs;
// callers render that as a message, not an empty list. For a non-empty wallet
// the result has exactly one entry per owned token, in ledger order, with nil
// entries for tokens the marketplace knows nothing about.
func (s *Service) GetEnrichedNfts(ctx context.Context, walletAddress string) ([]*types.EnrichedNft, error) {
	records, err := s.xrpl.GetAccountNfts(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		log.Ctx(ctx).Info().
			Str("wallet_address", walletAddress).
			Msg("wallet holds no NFTs")
		return nil, nil
	}

	start := time.Now()
	enriched := make([]*types.EnrichedNft, len(records))

	// Bounded fork-join: one task per token, capped so a large wallet cannot
	// overwhelm the marketplace API. Tasks are not cancelled when a sibling
	// fails; the first hard fault fails the whole request after the join.
	var g errgroup.Group
	g.SetLimit(s.cfg.API.MaxConcurrentEnrichments)

	for i, record := range records {
		g.Go(func() error {
			nft, err := s.FetchFullNftData(ctx, record.NFTokenID)
			if err != nil {
				return err
			}
			enriched[i] = nft
			return nil
		})
	}

	err = g.Wait()
	metrics.RecordEnrichment(time.Since(start), len(records), err != nil)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Str("wallet_address", walletAddress).
		Int("nft_count", len(enriched)).
		Msg("enriched wallet NFTs")

	return enriched, nil
}

// FetchFullNftData merges marketplace metadata with the collection's rank and
// tier. (nil, nil) means the marketplace had no data for the token.
func (s *Service) FetchFullNftData(ctx context.Context, tokenID string) (*types.EnrichedNft, error) {
	data, err := s.marketplace.GetNftData(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	rank, tier := s.lookupRank(ctx, data.CollectionID)

	return &types.EnrichedNft{
		Name:         data.Name,
		FloorPrice:   data.FloorPrice,
		CollectionID: data.CollectionID,
		PictureURL:   data.PictureURL,
		Tier:         tier,
		Rank:         rank,
	}, nil
}

// lookupRank never fails: a collection missing from the snapshot gets the
// fallback rank silently, while an unreachable store gets it with a warning.
func (s *Service) lookupRank(ctx context.Context, collectionID int64) (int, types.Tier) {
	doc, err := s.db.GetCollectionRank(ctx, collectionID)
	if err != nil {
		if !db.IsNotFoundError(err) {
			log.Ctx(ctx).Warn().
				Err(err).
				Int64("collection_id", collectionID).
				Msg("rank lookup failed, falling back to unranked")
		}
		return types.FallbackRank, types.FallbackTier
	}

	return doc.Rank, types.TierForRank(doc.Rank)
}

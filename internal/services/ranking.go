package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
)

// RankSnapshotSize caps the derived ranking at the top 100 collections.
const RankSnapshotSize = 100

// PopularityScore is monotonically increasing in both inputs and used only
// for sort ordering.
func PopularityScore(floorPrice, totalVolume float64) float64 {
	return math.Log(floorPrice+1) * math.Log(totalVolume+1)
}

// RecomputeRankings rebuilds the top-100 rank snapshot from the raw metrics.
// Running it twice on unchanged input produces an identical snapshot. Returns
// the number of entries written.
func (s *Service) RecomputeRankings(ctx context.Context) (int, error) {
	start := time.Now()
	written, err := s.recomputeRankings(ctx)
	metrics.RecordBatchJobDuration(time.Since(start), "recompute_rankings", err != nil)
	return written, err
}

func (s *Service) recomputeRankings(ctx context.Context) (int, error) {
	metricDocs, err := s.db.GetCollectionMetrics(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load collection metrics: %w", err)
	}

	scored := make([]*model.CollectionMetricDocument, 0, len(metricDocs))
	for _, doc := range metricDocs {
		if err := validateMetric(doc); err != nil {
			return 0, err
		}
		rescored := *doc
		rescored.Value = PopularityScore(doc.FloorPrice, doc.TotalVolume)
		scored = append(scored, &rescored)
	}

	// Stable sort: ties keep their original storage order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Value > scored[j].Value
	})

	if len(scored) > RankSnapshotSize {
		scored = scored[:RankSnapshotSize]
	}

	ranks := make([]*model.CollectionRankDocument, len(scored))
	for i, doc := range scored {
		ranks[i] = &model.CollectionRankDocument{
			Rank:                     i + 1,
			CollectionMetricDocument: *doc,
		}
	}

	if err := s.db.ReplaceRankSnapshot(ctx, ranks); err != nil {
		return 0, fmt.Errorf("failed to replace rank snapshot: %w", err)
	}

	metrics.RecordRankSnapshotSize(len(ranks))
	log.Ctx(ctx).Info().
		Int("collections", len(metricDocs)).
		Int("ranked", len(ranks)).
		Msg("rank snapshot recomputed")

	return len(ranks), nil
}

func validateMetric(doc *model.CollectionMetricDocument) error {
	badValue := func(field string, v float64) error {
		return &BatchDataError{
			CollectionID: fmt.Sprintf("%d", doc.CollectionID),
			Field:        field,
			Err:          fmt.Errorf("invalid value %v", v),
		}
	}

	if math.IsNaN(doc.FloorPrice) || math.IsInf(doc.FloorPrice, 0) || doc.FloorPrice < 0 {
		return badValue("floor_price", doc.FloorPrice)
	}
	if math.IsNaN(doc.TotalVolume) || math.IsInf(doc.TotalVolume, 0) || doc.TotalVolume < 0 {
		return badValue("total_volume", doc.TotalVolume)
	}

	return nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
)

type metricsFile struct {
	Data []metricsFileItem `json:"data"`
}

type metricsFileItem struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Bio         string      `json:"bio"`
	FloorPrice  json.Number `json:"floor_price"`
	TotalVolume json.Number `json:"total_volume"`
}

// ImportCollectionMetrics loads a collection-metrics feed file and replaces
// the raw metric snapshot wholesale. Any unparseable entry fails the whole
// import before anything is written. Returns the number of imported entries.
func (s *Service) ImportCollectionMetrics(ctx context.Context, path string) (int, error) {
	start := time.Now()
	imported, err := s.importCollectionMetrics(ctx, path)
	metrics.RecordBatchJobDuration(time.Since(start), "import_metrics", err != nil)
	return imported, err
}

func (s *Service) importCollectionMetrics(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read metrics file: %w", err)
	}

	var file metricsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return 0, fmt.Errorf("failed to parse metrics file: %w", err)
	}

	docs := make([]*model.CollectionMetricDocument, 0, len(file.Data))
	for _, item := range file.Data {
		id, err := item.ID.Int64()
		if err != nil {
			return 0, &BatchDataError{CollectionID: item.ID.String(), Field: "id", Err: err}
		}

		floorPrice, err := parseDecimal(item.FloorPrice)
		if err != nil {
			return 0, &BatchDataError{CollectionID: item.ID.String(), Field: "floor_price", Err: err}
		}

		totalVolume, err := parseDecimal(item.TotalVolume)
		if err != nil {
			return 0, &BatchDataError{CollectionID: item.ID.String(), Field: "total_volume", Err: err}
		}

		docs = append(docs, &model.CollectionMetricDocument{
			CollectionID: id,
			Name:         item.Name,
			Bio:          item.Bio,
			FloorPrice:   floorPrice,
			TotalVolume:  totalVolume,
			Value:        PopularityScore(floorPrice, totalVolume),
		})
	}

	if err := s.db.ReplaceCollectionMetrics(ctx, docs); err != nil {
		return 0, fmt.Errorf("failed to replace collection metrics: %w", err)
	}

	log.Ctx(ctx).Info().
		Str("path", path).
		Int("collections", len(docs)).
		Msg("collection metrics imported")

	return len(docs), nil
}

// parseDecimal goes through apd so exponent forms and overly precise feed
// values are validated as decimals before the float64 conversion.
func parseDecimal(n json.Number) (float64, error) {
	d, _, err := apd.NewFromString(n.String())
	if err != nil {
		return 0, err
	}

	return d.Float64()
}

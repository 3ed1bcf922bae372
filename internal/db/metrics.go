package db

import (
	"context"
	"time"

	"github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) run(method string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetCollectionRank(ctx context.Context, collectionID int64) (result *model.CollectionRankDocument, err error) {
	//nolint:errcheck
	d.run("GetCollectionRank", func() error {
		result, err = d.db.GetCollectionRank(ctx, collectionID)
		return err
	})

	return
}

func (d *DbWithMetrics) GetRankSnapshot(ctx context.Context) (result []*model.CollectionRankDocument, err error) {
	//nolint:errcheck
	d.run("GetRankSnapshot", func() error {
		result, err = d.db.GetRankSnapshot(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) ReplaceRankSnapshot(ctx context.Context, ranks []*model.CollectionRankDocument) error {
	return d.run("ReplaceRankSnapshot", func() error {
		return d.db.ReplaceRankSnapshot(ctx, ranks)
	})
}

func (d *DbWithMetrics) GetCollectionMetrics(ctx context.Context) (result []*model.CollectionMetricDocument, err error) {
	//nolint:errcheck
	d.run("GetCollectionMetrics", func() error {
		result, err = d.db.GetCollectionMetrics(ctx)
		return err
	})

	return
}

func (d *DbWithMetrics) ReplaceCollectionMetrics(ctx context.Context, docs []*model.CollectionMetricDocument) error {
	return d.run("ReplaceCollectionMetrics", func() error {
		return d.db.ReplaceCollectionMetrics(ctx, docs)
	})
}

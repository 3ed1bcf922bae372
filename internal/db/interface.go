package db

import (
	"context"

	"github.com/hyblock/hyblock-backend/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db.go
type DbInterface interface {
	Ping(ctx context.Context) error
	GetCollectionRank(ctx context.Context, collectionID int64) (*model.CollectionRankDocument, error)
	GetRankSnapshot(ctx context.Context) ([]*model.CollectionRankDocument, error)
	ReplaceRankSnapshot(ctx context.Context, ranks []*model.CollectionRankDocument) error
	GetCollectionMetrics(ctx context.Context) ([]*model.CollectionMetricDocument, error)
	ReplaceCollectionMetrics(ctx context.Context, metrics []*model.CollectionMetricDocument) error
}

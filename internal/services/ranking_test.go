package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/tests/mocks"
)

func metricDoc(id int64, floorPrice, totalVolume float64) *model.CollectionMetricDocument {
	return &model.CollectionMetricDocument{
		CollectionID: id,
		Name:         "collection",
		FloorPrice:   floorPrice,
		TotalVolume:  totalVolume,
	}
}

func TestPopularityScore(t *testing.T) {
	assert.Zero(t, PopularityScore(0, 0))
	assert.Zero(t, PopularityScore(100, 0))
	assert.InDelta(t, math.Log(11)*math.Log(1001), PopularityScore(10, 1000), 1e-12)

	// monotonic in both inputs
	assert.Greater(t, PopularityScore(20, 1000), PopularityScore(10, 1000))
	assert.Greater(t, PopularityScore(10, 2000), PopularityScore(10, 1000))
}

func TestRecomputeRankings_OrdersByScore(t *testing.T) {
	database := mocks.NewDbInterface(t)
	database.On("GetCollectionMetrics", mock.Anything).Return([]*model.CollectionMetricDocument{
		metricDoc(1, 1, 10),
		metricDoc(2, 100, 100000),
		metricDoc(3, 10, 1000),
	}, nil)

	var written []*model.CollectionRankDocument
	database.On("ReplaceRankSnapshot", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]*model.CollectionRankDocument)
		}).
		Return(nil)

	srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	n, err := srv.RecomputeRankings(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.Len(t, written, 3)
	assert.Equal(t, int64(2), written[0].CollectionID)
	assert.Equal(t, int64(3), written[1].CollectionID)
	assert.Equal(t, int64(1), written[2].CollectionID)
	for i, doc := range written {
		assert.Equal(t, i+1, doc.Rank)
		assert.InDelta(t, PopularityScore(doc.FloorPrice, doc.TotalVolume), doc.Value, 1e-12)
	}
}

func TestRecomputeRankings_TiesKeepStorageOrder(t *testing.T) {
	database := mocks.NewDbInterface(t)
	database.On("GetCollectionMetrics", mock.Anything).Return([]*model.CollectionMetricDocument{
		metricDoc(7, 10, 1000),
		metricDoc(8, 10, 1000),
		metricDoc(9, 10, 1000),
	}, nil)

	var written []*model.CollectionRankDocument
	database.On("ReplaceRankSnapshot", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]*model.CollectionRankDocument)
		}).
		Return(nil)

	srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	_, err := srv.RecomputeRankings(t.Context())
	require.NoError(t, err)

	require.Len(t, written, 3)
	assert.Equal(t, int64(7), written[0].CollectionID)
	assert.Equal(t, int64(8), written[1].CollectionID)
	assert.Equal(t, int64(9), written[2].CollectionID)
}

func TestRecomputeRankings_TruncatesToTop100(t *testing.T) {
	docs := make([]*model.CollectionMetricDocument, 150)
	for i := range docs {
		// higher id, higher volume, higher score
		docs[i] = metricDoc(int64(i+1), 10, float64((i+1)*1000))
	}

	database := mocks.NewDbInterface(t)
	database.On("GetCollectionMetrics", mock.Anything).Return(docs, nil)

	var written []*model.CollectionRankDocument
	database.On("ReplaceRankSnapshot", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]*model.CollectionRankDocument)
		}).
		Return(nil)

	srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	n, err := srv.RecomputeRankings(t.Context())
	require.NoError(t, err)
	assert.Equal(t, RankSnapshotSize, n)

	require.Len(t, written, RankSnapshotSize)
	assert.Equal(t, int64(150), written[0].CollectionID)
	assert.Equal(t, 1, written[0].Rank)
	assert.Equal(t, int64(51), written[99].CollectionID)
	assert.Equal(t, 100, written[99].Rank)
}

func TestRecomputeRankings_Idempotent(t *testing.T) {
	metricDocs := []*model.CollectionMetricDocument{
		metricDoc(1, 5, 500),
		metricDoc(2, 50, 50000),
	}

	database := mocks.NewDbInterface(t)
	database.On("GetCollectionMetrics", mock.Anything).Return(metricDocs, nil).Twice()

	var snapshots [][]*model.CollectionRankDocument
	database.On("ReplaceRankSnapshot", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			snapshots = append(snapshots, args.Get(1).([]*model.CollectionRankDocument))
		}).
		Return(nil).
		Twice()

	srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	_, err := srv.RecomputeRankings(t.Context())
	require.NoError(t, err)
	_, err = srv.RecomputeRankings(t.Context())
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Equal(t, snapshots[0], snapshots[1])
}

func TestRecomputeRankings_RejectsBadMetric(t *testing.T) {
	database := mocks.NewDbInterface(t)
	database.On("GetCollectionMetrics", mock.Anything).Return([]*model.CollectionMetricDocument{
		metricDoc(1, 10, 1000),
		metricDoc(2, -3, 1000),
	}, nil)

	srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	_, err := srv.RecomputeRankings(t.Context())
	require.Error(t, err)
	assert.True(t, IsBatchDataError(err))
	database.AssertNotCalled(t, "ReplaceRankSnapshot", mock.Anything, mock.Anything)
}

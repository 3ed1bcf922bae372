package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/tests/mocks"
)

func writeMetricsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestImportCollectionMetrics(t *testing.T) {
	path := writeMetricsFile(t, `{
		"data": [
			{"id": 11, "name": "Apes", "bio": "apes bio", "floor_price": "12.5", "total_volume": "98765.4321"},
			{"id": 12, "name": "Bears", "bio": "", "floor_price": "0", "total_volume": "1e3"}
		]
	}`)

	var written []*model.CollectionMetricDocument
	database := mocks.NewDbInterface(t)
	database.On("ReplaceCollectionMetrics", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(1).([]*model.CollectionMetricDocument)
		}).
		Return(nil)

	srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	n, err := srv.ImportCollectionMetrics(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, written, 2)
	assert.Equal(t, int64(11), written[0].CollectionID)
	assert.Equal(t, "Apes", written[0].Name)
	assert.Equal(t, 12.5, written[0].FloorPrice)
	assert.Equal(t, 98765.4321, written[0].TotalVolume)
	assert.InDelta(t, PopularityScore(12.5, 98765.4321), written[0].Value, 1e-12)

	assert.Equal(t, int64(12), written[1].CollectionID)
	assert.Equal(t, 1000.0, written[1].TotalVolume)
	assert.Zero(t, written[1].Value)
}

func TestImportCollectionMetrics_BadEntryWritesNothing(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "fractional id",
			body: `{"data": [
				{"id": 11, "name": "Apes", "floor_price": "12.5", "total_volume": "100"},
				{"id": 12.5, "name": "Bears", "floor_price": "1", "total_volume": "100"}
			]}`,
		},
		{
			name: "floor price overflows float64",
			body: `{"data": [
				{"id": 12, "name": "Bears", "floor_price": 1e100000, "total_volume": "100"}
			]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			database := mocks.NewDbInterface(t)

			srv := NewService(testConfig(), database, mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

			_, err := srv.ImportCollectionMetrics(t.Context(), writeMetricsFile(t, tc.body))
			require.Error(t, err)
			assert.True(t, IsBatchDataError(err))
			database.AssertNotCalled(t, "ReplaceCollectionMetrics", mock.Anything, mock.Anything)
		})
	}
}

func TestImportCollectionMetrics_MissingFile(t *testing.T) {
	srv := NewService(testConfig(), mocks.NewDbInterface(t), mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	_, err := srv.ImportCollectionMetrics(t.Context(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestImportCollectionMetrics_MalformedJson(t *testing.T) {
	path := writeMetricsFile(t, `{"data": [`)

	srv := NewService(testConfig(), mocks.NewDbInterface(t), mocks.NewXrplInterface(t), mocks.NewMarketplaceInterface(t))

	_, err := srv.ImportCollectionMetrics(t.Context(), path)
	require.Error(t, err)
}

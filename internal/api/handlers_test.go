package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hyblock/hyblock-backend/internal/clients/marketplaceclient"
	"github.com/hyblock/hyblock-backend/internal/clients/xrplclient"
	"github.com/hyblock/hyblock-backend/internal/config"
	"github.com/hyblock/hyblock-backend/internal/db"
	"github.com/hyblock/hyblock-backend/internal/db/model"
	"github.com/hyblock/hyblock-backend/internal/observability/metrics"
	"github.com/hyblock/hyblock-backend/internal/services"
	"github.com/hyblock/hyblock-backend/tests/mocks"
)

func TestMain(m *testing.M) {
	metrics.Init(9995)

	os.Exit(m.Run())
}

type serverMocks struct {
	xrpl        *mocks.XrplInterface
	marketplace *mocks.MarketplaceInterface
	db          *mocks.DbInterface
}

func newTestServer(t *testing.T) (*Server, serverMocks) {
	t.Helper()

	m := serverMocks{
		xrpl:        mocks.NewXrplInterface(t),
		marketplace: mocks.NewMarketplaceInterface(t),
		db:          mocks.NewDbInterface(t),
	}

	cfg := &config.Config{
		API: config.APIConfig{
			Host:                     "127.0.0.1",
			Port:                     8080,
			MaxConcurrentEnrichments: 8,
		},
	}

	service := services.NewService(cfg, m.db, m.xrpl, m.marketplace)
	return New(cfg, service, m.xrpl, m.db), m
}

func doRequest(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthcheck(t *testing.T) {
	server, m := newTestServer(t)
	m.db.On("Ping", mock.Anything).Return(nil)

	rec := doRequest(t, server, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "ok"}`, rec.Body.String())
}

func TestHealthcheck_DbDown(t *testing.T) {
	server, m := newTestServer(t)
	m.db.On("Ping", mock.Anything).Return(errors.New("no reachable servers"))

	rec := doRequest(t, server, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail": "no reachable servers"}`, rec.Body.String())
}

func TestGetNftsList(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("GetAccountNfts", mock.Anything, "rWallet").Return([]xrplclient.NftRecord{
		{NFTokenID: "TOKEN-A", Issuer: "rIssuer", NFTokenTaxon: 7},
	}, nil)

	rec := doRequest(t, server, http.MethodGet, "/get-nfts-list/rWallet", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var records []xrplclient.NftRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "TOKEN-A", records[0].NFTokenID)
}

func TestGetNftsList_EmptyWallet(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("GetAccountNfts", mock.Anything, "rEmpty").Return(nil, nil)

	rec := doRequest(t, server, http.MethodGet, "/get-nfts-list/rEmpty", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetNftsList_LedgerError(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("GetAccountNfts", mock.Anything, "rWallet").
		Return(nil, &xrplclient.LedgerQueryError{Message: "actNotFound"})

	rec := doRequest(t, server, http.MethodGet, "/get-nfts-list/rWallet", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail": "failed to retrieve NFTs: actNotFound"}`, rec.Body.String())
}

func TestGetNftData(t *testing.T) {
	server, m := newTestServer(t)
	m.marketplace.On("GetNftData", mock.Anything, "TOKEN-A").Return(&marketplaceclient.NftData{
		Name:         "Ape #1",
		FloorPrice:   10,
		CollectionID: 3,
		PictureURL:   "https://images.example/ipfs/Qm",
	}, nil)
	m.db.On("GetCollectionRank", mock.Anything, int64(3)).
		Return(&model.CollectionRankDocument{Rank: 15}, nil)

	rec := doRequest(t, server, http.MethodGet, "/get-nft-data/TOKEN-A", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"name": "Ape #1",
		"floor_price": 10,
		"collection_id": 3,
		"picture_url": "https://images.example/ipfs/Qm",
		"tier": 2,
		"rank": 15
	}`, rec.Body.String())
}

func TestGetNftData_UnknownToken(t *testing.T) {
	server, m := newTestServer(t)
	m.marketplace.On("GetNftData", mock.Anything, "TOKEN-A").Return(nil, nil)

	rec := doRequest(t, server, http.MethodGet, "/get-nft-data/TOKEN-A", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestGetNfts_EmptyWallet(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("GetAccountNfts", mock.Anything, "rEmpty").Return([]xrplclient.NftRecord{}, nil)

	rec := doRequest(t, server, http.MethodGet, "/get-nfts/rEmpty", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "No NFTs found in the wallet."}`, rec.Body.String())
}

func TestGetNfts_MixedEntries(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("GetAccountNfts", mock.Anything, "rWallet").Return([]xrplclient.NftRecord{
		{NFTokenID: "TOKEN-A"},
		{NFTokenID: "TOKEN-B"},
	}, nil)
	m.marketplace.On("GetNftData", mock.Anything, "TOKEN-A").Return(&marketplaceclient.NftData{
		Name:         "Ape #1",
		FloorPrice:   10,
		CollectionID: 3,
		PictureURL:   "https://images.example/ipfs/Qm",
	}, nil)
	m.marketplace.On("GetNftData", mock.Anything, "TOKEN-B").Return(nil, nil)
	m.db.On("GetCollectionRank", mock.Anything, int64(3)).
		Return(nil, &db.NotFoundError{Message: "collection rank not found"})

	rec := doRequest(t, server, http.MethodGet, "/get-nfts/rWallet", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"nfts": [
			{
				"name": "Ape #1",
				"floor_price": 10,
				"collection_id": 3,
				"picture_url": "https://images.example/ipfs/Qm",
				"tier": 5,
				"rank": 101
			},
			{}
		]
	}`, rec.Body.String())
}

func TestGetNfts_LedgerError(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("GetAccountNfts", mock.Anything, "rWallet").
		Return(nil, &xrplclient.LedgerUnavailableError{Err: errors.New("connection refused")})

	rec := doRequest(t, server, http.MethodGet, "/get-nfts/rWallet", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "ledger unavailable")
}

func TestResolveBet_Won(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("DeriveAddress", "sEdUserSeed").Return("rUserAddress", nil)
	m.xrpl.On("TransferTokens", mock.Anything, "rUserAddress", int64(50)).
		Return(&xrplclient.TransactionReceipt{
			EngineResult: "tesSUCCESS",
			Accepted:     true,
			TxHash:       "ABC123",
		}, nil)

	rec := doRequest(t, server, http.MethodPost, "/resolve_bet",
		`{"user_wallet_seed": "sEdUserSeed", "bet_amount": 50, "user_won": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result string          `json:"result"`
		Payout json.RawMessage `json:"payout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User won", resp.Result)
	assert.Contains(t, string(resp.Payout), "tesSUCCESS")
}

func TestResolveBet_Lost(t *testing.T) {
	server, m := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/resolve_bet",
		`{"user_wallet_seed": "sEdUserSeed", "bet_amount": 50, "user_won": false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result": "User lost", "payout": "No payout"}`, rec.Body.String())
	m.xrpl.AssertNotCalled(t, "TransferTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveBet_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{"user_wallet_seed": `},
		{"missing seed", `{"bet_amount": 50, "user_won": true}`},
		{"missing user_won", `{"user_wallet_seed": "sEdUserSeed", "bet_amount": 50}`},
		{"zero amount", `{"user_wallet_seed": "sEdUserSeed", "bet_amount": 0, "user_won": true}`},
		{"negative amount", `{"user_wallet_seed": "sEdUserSeed", "bet_amount": -5, "user_won": true}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server, _ := newTestServer(t)

			rec := doRequest(t, server, http.MethodPost, "/resolve_bet", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Detail)
		})
	}
}

func TestResolveBet_TransferFailure(t *testing.T) {
	server, m := newTestServer(t)
	m.xrpl.On("DeriveAddress", "sEdUserSeed").Return("rUserAddress", nil)
	m.xrpl.On("TransferTokens", mock.Anything, "rUserAddress", int64(50)).
		Return(nil, &xrplclient.SubmissionError{Err: errors.New("connection refused")})

	rec := doRequest(t, server, http.MethodPost, "/resolve_bet",
		`{"user_wallet_seed": "sEdUserSeed", "bet_amount": 50, "user_won": true}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "failed to submit transaction")
}

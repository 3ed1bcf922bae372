package marketplaceclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/clients/client"
	"github.com/hyblock/hyblock-backend/internal/config"
)

const nftEndpoint = "/api/nfts/{token_id}"

// NftData is the subset of marketplace metadata the enrichment flow needs.
type NftData struct {
	Name         string
	FloorPrice   float64
	CollectionID int64
	PictureURL   string
}

type Client struct {
	httpClient *http.Client
	cfg        *config.MarketplaceConfig
}

func NewClient(cfg *config.MarketplaceConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.BaseURL
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

type nftDataResponse struct {
	Data *struct {
		Name         *string `json:"name"`
		IpfsURL      *string `json:"ipfs_url"`
		CollectionID *int64  `json:"collection_id"`
		Collection   *struct {
			FloorPrice *float64 `json:"floor_price"`
		} `json:"collection"`
	} `json:"data"`
}

func (c *Client) GetNftData(ctx context.Context, tokenID string) (*NftData, error) {
	type empty struct{}

	opts := &client.HttpClientOptions{
		Path:         fmt.Sprintf("/api/nfts/%s", tokenID),
		TemplatePath: nftEndpoint,
	}

	resp, err := client.SendRequest[empty, nftDataResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		if httpErr, ok := client.IsHttpError(err); ok {
			// Soft empty: the marketplace knows nothing about this token.
			log.Ctx(ctx).Debug().
				Str("token_id", tokenID).
				Int("status_code", httpErr.StatusCode).
				Msg("marketplace returned non-200, treating as empty")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch marketplace data for token %s: %w", tokenID, err)
	}

	missing := func(field string) error {
		return &MalformedUpstreamResponseError{TokenID: tokenID, Field: field}
	}

	data := resp.Data
	switch {
	case data == nil:
		return nil, missing("data")
	case data.Name == nil:
		return nil, missing("data.name")
	case data.IpfsURL == nil:
		return nil, missing("data.ipfs_url")
	case data.CollectionID == nil:
		return nil, missing("data.collection_id")
	case data.Collection == nil || data.Collection.FloorPrice == nil:
		return nil, missing("data.collection.floor_price")
	}

	return &NftData{
		Name:         *data.Name,
		FloorPrice:   *data.Collection.FloorPrice,
		CollectionID: *data.CollectionID,
		PictureURL:   c.cfg.ImageProxyURL + *data.IpfsURL,
	}, nil
}

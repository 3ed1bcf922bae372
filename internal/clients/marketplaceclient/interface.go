package marketplaceclient

import "context"

//go:generate mockery --name=MarketplaceInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_marketplace_client.go
type MarketplaceInterface interface {
	// GetNftData returns marketplace metadata for a token, or (nil, nil) when
	// the marketplace has nothing for it (soft empty, not an error).
	GetNftData(ctx context.Context, tokenID string) (*NftData, error)
}

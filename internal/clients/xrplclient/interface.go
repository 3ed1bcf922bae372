package xrplclient

import "context"

//go:generate mockery --name=XrplInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_xrpl_client.go
type XrplInterface interface {
	// GetAccountNfts lists the NFTs a wallet owns in validated ledger state.
	// An empty slice is a valid result.
	GetAccountNfts(ctx context.Context, walletAddress string) ([]NftRecord, error)
	// TransferTokens pays the configured issued currency from the system
	// wallet to the destination address.
	TransferTokens(ctx context.Context, destinationAddress string, amount int64) (*TransactionReceipt, error)
	// DeriveAddress derives the classic address for a wallet seed.
	DeriveAddress(seed string) (string, error)
}

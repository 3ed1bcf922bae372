package xrplclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Peersyst/xrpl-go/xrpl/rpc"
	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	txtypes "github.com/Peersyst/xrpl-go/xrpl/transaction/types"
	"github.com/Peersyst/xrpl-go/xrpl/wallet"
	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/clients/client"
	"github.com/hyblock/hyblock-backend/internal/config"
)

const accountNftsMethod = "account_nfts"

type Client struct {
	httpClient   *http.Client
	rpcClient    *rpc.Client
	cfg          *config.XrplConfig
	systemWallet wallet.Wallet
	// issuerAddress is derived once from the system wallet seed; the system
	// wallet is also the issuer of the settlement token.
	issuerAddress string
}

func NewClient(cfg *config.XrplConfig) (*Client, error) {
	rpcCfg, err := rpc.NewClientConfig(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to build XRPL rpc config: %w", err)
	}

	systemWallet, err := wallet.FromSeed(cfg.SystemWalletSeed, "")
	if err != nil {
		return nil, fmt.Errorf("failed to derive system wallet: %w", err)
	}

	return &Client{
		httpClient:    &http.Client{},
		rpcClient:     rpc.NewClient(rpcCfg),
		cfg:           cfg,
		systemWallet:  systemWallet,
		issuerAddress: string(systemWallet.ClassicAddress),
	}, nil
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

// IssuerAddress returns the fixed issuer of the settlement token.
func (c *Client) IssuerAddress() string {
	return c.issuerAddress
}

type accountNftsRequest struct {
	Method string `json:"method"`
	Params []struct {
		Account     string `json:"account"`
		LedgerIndex string `json:"ledger_index"`
	} `json:"params"`
}

type accountNftsResponse struct {
	Result struct {
		Account      string      `json:"account"`
		AccountNfts  []NftRecord `json:"account_nfts"`
		Status       string      `json:"status"`
		Error        string      `json:"error"`
		ErrorMessage string      `json:"error_message"`
	} `json:"result"`
}

func (c *Client) GetAccountNfts(ctx context.Context, walletAddress string) ([]NftRecord, error) {
	body := accountNftsRequest{Method: accountNftsMethod}
	body.Params = append(body.Params, struct {
		Account     string `json:"account"`
		LedgerIndex string `json:"ledger_index"`
	}{
		Account: walletAddress,
		// validated only: unconfirmed ownership must not leak into results
		LedgerIndex: "validated",
	})

	opts := &client.HttpClientOptions{
		Path:         "/",
		TemplatePath: accountNftsMethod,
	}

	resp, err := client.SendRequest[accountNftsRequest, accountNftsResponse](ctx, c, http.MethodPost, opts, &body)
	if err != nil {
		return nil, &LedgerUnavailableError{Err: err}
	}

	if resp.Result.Status != "success" {
		message := resp.Result.ErrorMessage
		if message == "" {
			message = resp.Result.Error
		}
		if message == "" {
			message = "Unknown error"
		}
		return nil, &LedgerQueryError{Message: message}
	}

	log.Ctx(ctx).Info().
		Str("wallet_address", walletAddress).
		Int("nft_count", len(resp.Result.AccountNfts)).
		Msg("retrieved NFTs from wallet")

	return resp.Result.AccountNfts, nil
}

func (c *Client) TransferTokens(ctx context.Context, destinationAddress string, amount int64) (*TransactionReceipt, error) {
	payment := &transaction.Payment{
		BaseTx: transaction.BaseTx{
			Account: c.systemWallet.ClassicAddress,
		},
		Destination: txtypes.Address(destinationAddress),
		Amount: txtypes.IssuedCurrencyAmount{
			Issuer:   txtypes.Address(c.issuerAddress),
			Currency: c.cfg.CurrencyCode,
			Value:    strconv.FormatInt(amount, 10),
		},
	}

	flatTx := payment.Flatten()
	if err := c.rpcClient.Autofill(&flatTx); err != nil {
		return nil, &SubmissionError{Err: fmt.Errorf("autofill failed: %w", err)}
	}

	// The seed never leaves the process; only the signed blob is submitted.
	txBlob, txHash, err := c.systemWallet.Sign(flatTx)
	if err != nil {
		return nil, &SigningError{Err: err}
	}

	resp, err := c.rpcClient.SubmitTxBlob(txBlob, false)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}

	log.Ctx(ctx).Info().
		Str("destination", destinationAddress).
		Int64("amount", amount).
		Str("engine_result", resp.EngineResult).
		Msg("submitted settlement payment")

	return &TransactionReceipt{
		EngineResult:        resp.EngineResult,
		EngineResultCode:    resp.EngineResultCode,
		EngineResultMessage: resp.EngineResultMessage,
		Accepted:            resp.Accepted,
		TxHash:              txHash,
		TxBlob:              txBlob,
	}, nil
}

func (c *Client) DeriveAddress(seed string) (string, error) {
	w, err := wallet.FromSeed(seed, "")
	if err != nil {
		return "", fmt.Errorf("failed to derive address from seed: %w", err)
	}
	return string(w.ClassicAddress), nil
}

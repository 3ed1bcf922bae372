package xrplclient

// NftRecord is one raw account_nfts entry, field names as the ledger reports
// them. Returned unmodified by the NFT listing endpoint.
type NftRecord struct {
	Flags        uint32 `json:"Flags"`
	Issuer       string `json:"Issuer"`
	NFTokenID    string `json:"NFTokenID"`
	NFTokenTaxon uint32 `json:"NFTokenTaxon"`
	URI          string `json:"URI,omitempty"`
	TransferFee  uint16 `json:"TransferFee"`
	NFTSerial    uint32 `json:"nft_serial"`
}

// TransactionReceipt is the ledger's submit result. The network may still
// report the payment as queued or pending; callers do not wait for final
// validation.
type TransactionReceipt struct {
	EngineResult        string `json:"engine_result"`
	EngineResultCode    int    `json:"engine_result_code"`
	EngineResultMessage string `json:"engine_result_message"`
	Accepted            bool   `json:"accepted"`
	TxHash              string `json:"tx_hash"`
	TxBlob              string `json:"tx_blob"`
}

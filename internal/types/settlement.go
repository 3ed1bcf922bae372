package types

const (
	SettlementResultWon  = "User won"
	SettlementResultLost = "User lost"

	// NoPayout is the literal sentinel returned for a lost bet. It is a plain
	// string on the wire, never a structured receipt.
	NoPayout = "No payout"
)

// SettlementResult is the outcome of resolving a bet. Payout holds either a
// transaction receipt (won) or the NoPayout sentinel string (lost).
type SettlementResult struct {
	Result string `json:"result"`
	Payout any    `json:"payout"`
}

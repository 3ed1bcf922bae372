package types

// Tier is the coarse 1-5 popularity bucket derived from a collection's rank.
type Tier int

const (
	TierTop      Tier = 1
	TierHigh     Tier = 2
	TierMid      Tier = 3
	TierLow      Tier = 4
	TierUnranked Tier = 5
)

// FallbackRank and FallbackTier are returned when a collection has no entry
// in the rank snapshot. Callers treat them as valid values, not as errors.
const (
	FallbackRank = 101
	FallbackTier = TierUnranked
)

// TierForRank buckets a 1-based rank into a tier. Ranks outside 1..100
// (including the fallback rank) map to the unranked tier.
func TierForRank(rank int) Tier {
	switch {
	case rank >= 1 && rank <= 10:
		return TierTop
	case rank >= 11 && rank <= 30:
		return TierHigh
	case rank >= 31 && rank <= 50:
		return TierMid
	case rank >= 51 && rank <= 100:
		return TierLow
	default:
		return TierUnranked
	}
}

package types

// EnrichedNft combines marketplace metadata with the collection's precomputed
// rank and tier. It is assembled per request and never persisted.
type EnrichedNft struct {
	Name         string  `json:"name"`
	FloorPrice   float64 `json:"floor_price"`
	CollectionID int64   `json:"collection_id"`
	PictureURL   string  `json:"picture_url"`
	Tier         Tier    `json:"tier"`
	Rank         int     `json:"rank"`
}

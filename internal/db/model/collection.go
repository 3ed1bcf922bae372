package model

const (
	CollectionMetricCollection = "nft-collection-data"
	CollectionRankCollection   = "nft-collection-rank"
)

// CollectionMetricDocument is a raw snapshot of one NFT collection's market
// metrics, imported wholesale from the external feed. Value is the
// precomputed popularity score ln(floor_price+1)*ln(total_volume+1).
type CollectionMetricDocument struct {
	CollectionID int64   `bson:"collection_id"`
	Name         string  `bson:"name"`
	Bio          string  `bson:"bio"`
	FloorPrice   float64 `bson:"floor_price"`
	TotalVolume  float64 `bson:"total_volume"`
	Value        float64 `bson:"value"`
}

// CollectionRankDocument is one entry of the derived top-100 ranking. The
// whole collection is rewritten by each batch run, never partially updated.
type CollectionRankDocument struct {
	Rank                     int `bson:"rank"`
	CollectionMetricDocument `bson:",inline"`
}

package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hyblock/hyblock-backend/internal/db/model"
)

func (db *Database) GetCollectionRank(ctx context.Context, collectionID int64) (*model.CollectionRankDocument, error) {
	filter := bson.M{"collection_id": collectionID}
	res := db.collection(model.CollectionRankCollection).FindOne(ctx, filter)

	var doc model.CollectionRankDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", collectionID),
				Message: "collection rank not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) GetRankSnapshot(ctx context.Context) ([]*model.CollectionRankDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := db.collection(model.CollectionRankCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ranks []*model.CollectionRankDocument
	if err := cursor.All(ctx, &ranks); err != nil {
		return nil, err
	}

	return ranks, nil
}

// ReplaceRankSnapshot swaps the whole ranking for the new one. Delete and
// insert run inside a single transaction so concurrent readers observe either
// the old or the new snapshot, never a mix. Requires a replica-set deployment.
func (db *Database) ReplaceRankSnapshot(ctx context.Context, ranks []*model.CollectionRankDocument) error {
	session, err := db.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		collection := db.collection(model.CollectionRankCollection)

		if _, err := collection.DeleteMany(sc, bson.M{}); err != nil {
			return nil, err
		}

		if len(ranks) == 0 {
			return nil, nil
		}

		docs := make([]interface{}, len(ranks))
		for i, rank := range ranks {
			docs[i] = rank
		}

		if _, err := collection.InsertMany(sc, docs); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

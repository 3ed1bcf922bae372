package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hyblock/hyblock-backend/internal/db/model"
)

// GetCollectionMetrics returns all raw collection metrics in storage order.
func (db *Database) GetCollectionMetrics(ctx context.Context) ([]*model.CollectionMetricDocument, error) {
	cursor, err := db.collection(model.CollectionMetricCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var metrics []*model.CollectionMetricDocument
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}

	return metrics, nil
}

// ReplaceCollectionMetrics rewrites the raw metric snapshot wholesale, in a
// single transaction for the same snapshot-consistency guarantee as the
// ranking replace.
func (db *Database) ReplaceCollectionMetrics(ctx context.Context, metrics []*model.CollectionMetricDocument) error {
	session, err := db.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		collection := db.collection(model.CollectionMetricCollection)

		if _, err := collection.DeleteMany(sc, bson.M{}); err != nil {
			return nil, err
		}

		if len(metrics) == 0 {
			return nil, nil
		}

		docs := make([]interface{}, len(metrics))
		for i, metric := range metrics {
			docs[i] = metric
		}

		if _, err := collection.InsertMany(sc, docs); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

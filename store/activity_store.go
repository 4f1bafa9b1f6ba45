package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nersony/essen-sub001/models"
)

// ActivityStore records and lists admin audit-log entries.
type ActivityStore interface {
	Record(ctx context.Context, activity models.Activity) error
	List(ctx context.Context, page, limit int64) ([]models.Activity, int64, error)
}

type MongoActivityStore struct {
	col *mongo.Collection
}

func NewMongoActivityStore(col *mongo.Collection) *MongoActivityStore {
	return &MongoActivityStore{col: col}
}

func (s *MongoActivityStore) Record(ctx context.Context, activity models.Activity) error {
	_, err := s.col.InsertOne(ctx, activity)
	return err
}

func (s *MongoActivityStore) List(ctx context.Context, page, limit int64) ([]models.Activity, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

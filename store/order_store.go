package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nersony/essen-sub001/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderFilter is an explicit query filter for order listings. Date bounds
// are parsed and validated once at the HTTP boundary; nil means unbounded.
type OrderFilter struct {
	Status string
	UserID *primitive.ObjectID
	From   *time.Time
	To     *time.Time
}

// OrderStore is the order persistence boundary. The payment handlers depend
// on this interface rather than a live collection so they stay testable.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByReference(ctx context.Context, reference string) (*models.Order, error)
	List(ctx context.Context, filter OrderFilter, page, limit int64) ([]models.Order, int64, error)

	// ApplyPaymentStatus sets the status of the order matched by gateway
	// payment id, but only when the current status is one webhook delivery
	// may legitimately advance from. Returns the number of matched orders.
	ApplyPaymentStatus(ctx context.Context, paymentID, status string) (int64, error)

	// SetStatus is the admin path: unconditional status write with optional
	// tracking number and notes.
	SetStatus(ctx context.Context, id primitive.ObjectID, status, trackingNumber, notes string) (int64, error)
}

type MongoOrderStore struct {
	col *mongo.Collection
}

func NewMongoOrderStore(col *mongo.Collection) *MongoOrderStore {
	return &MongoOrderStore{col: col}
}

func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) error {
	_, err := s.col.InsertOne(ctx, order)
	return err
}

func (s *MongoOrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoOrderStore) FindByReference(ctx context.Context, reference string) (*models.Order, error) {
	var order models.Order
	err := s.col.FindOne(ctx, bson.M{"referenceNumber": reference}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoOrderStore) List(ctx context.Context, filter OrderFilter, page, limit int64) ([]models.Order, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.UserID != nil {
		query["userId"] = *filter.UserID
	}
	if filter.From != nil || filter.To != nil {
		created := bson.M{}
		if filter.From != nil {
			created["$gte"] = *filter.From
		}
		if filter.To != nil {
			created["$lt"] = *filter.To
		}
		query["createdAt"] = created
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	cursor, err := s.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *MongoOrderStore) ApplyPaymentStatus(ctx context.Context, paymentID, status string) (int64, error) {
	allowed := models.AllowedPriorStatuses(status)

	result, err := s.col.UpdateOne(ctx,
		bson.M{"paymentId": paymentID, "status": bson.M{"$in": allowed}},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (s *MongoOrderStore) SetStatus(ctx context.Context, id primitive.ObjectID, status, trackingNumber, notes string) (int64, error) {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if trackingNumber != "" {
		set["trackingNumber"] = trackingNumber
	}
	if notes != "" {
		set["notes"] = notes
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

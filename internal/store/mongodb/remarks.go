package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lock-tracking-api-server/internal/models"
)

// RemarkStore is append-only: remarks are never updated or deleted.
type RemarkStore struct {
	coll *mongo.Collection
}

func (s *RemarkStore) Create(ctx context.Context, remark *models.Remark) error {
	_, err := s.coll.InsertOne(ctx, remark)
	return err
}

func (s *RemarkStore) List(ctx context.Context, vendorID string) ([]models.Remark, error) {
	cursor, err := s.coll.Find(ctx, vendorFilter(vendorID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var remarks []models.Remark
	if err := cursor.All(ctx, &remarks); err != nil {
		return nil, err
	}
	if remarks == nil {
		remarks = []models.Remark{}
	}
	return remarks, nil
}

func (s *RemarkStore) ListByLock(ctx context.Context, lockID string) ([]models.Remark, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"lockID": lockID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var remarks []models.Remark
	if err := cursor.All(ctx, &remarks); err != nil {
		return nil, err
	}
	if remarks == nil {
		remarks = []models.Remark{}
	}
	return remarks, nil
}

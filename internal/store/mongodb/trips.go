package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

type TripStore struct {
	coll *mongo.Collection
}

func (s *TripStore) Create(ctx context.Context, trip *models.Trip) error {
	_, err := s.coll.InsertOne(ctx, trip)
	return err
}

func (s *TripStore) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	var trip models.Trip
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *TripStore) List(ctx context.Context, vendorID string) ([]models.Trip, error) {
	cursor, err := s.coll.Find(ctx, vendorFilter(vendorID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func (s *TripStore) ListByLock(ctx context.Context, lockID string) ([]models.Trip, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"lockID": lockID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func (s *TripStore) Update(ctx context.Context, trip *models.Trip) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": trip.ID}, trip)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

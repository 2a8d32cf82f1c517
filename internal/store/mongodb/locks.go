package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

type LockStore struct {
	coll *mongo.Collection
}

func (s *LockStore) Create(ctx context.Context, lock *models.Lock) error {
	_, err := s.coll.InsertOne(ctx, lock)
	return err
}

func (s *LockStore) GetByID(ctx context.Context, id string) (*models.Lock, error) {
	var lock models.Lock
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&lock)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lock, nil
}

func (s *LockStore) GetByNumber(ctx context.Context, vendorID, lockNumber string) (*models.Lock, error) {
	var lock models.Lock
	err := s.coll.FindOne(ctx, bson.M{"vendorID": vendorID, "lockNumber": lockNumber}).Decode(&lock)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lock, nil
}

func (s *LockStore) List(ctx context.Context, vendorID string) ([]models.Lock, error) {
	cursor, err := s.coll.Find(ctx, vendorFilter(vendorID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locks []models.Lock
	if err := cursor.All(ctx, &locks); err != nil {
		return nil, err
	}
	if locks == nil {
		locks = []models.Lock{}
	}
	return locks, nil
}

func (s *LockStore) Update(ctx context.Context, lock *models.Lock) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": lock.ID}, lock)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

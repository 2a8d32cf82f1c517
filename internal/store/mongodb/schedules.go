package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

type ScheduleStore struct {
	coll *mongo.Collection
}

func (s *ScheduleStore) Create(ctx context.Context, schedule *models.Schedule) error {
	_, err := s.coll.InsertOne(ctx, schedule)
	return err
}

func (s *ScheduleStore) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleStore) List(ctx context.Context, vendorID string) ([]models.Schedule, error) {
	cursor, err := s.coll.Find(ctx, vendorFilter(vendorID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	return schedules, nil
}

func (s *ScheduleStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

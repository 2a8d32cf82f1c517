package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/store"
)

type VendorStore struct {
	coll *mongo.Collection
}

func (s *VendorStore) Create(ctx context.Context, vendor *models.Vendor) error {
	_, err := s.coll.InsertOne(ctx, vendor)
	return err
}

func (s *VendorStore) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&vendor)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *VendorStore) GetByCode(ctx context.Context, code string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.coll.FindOne(ctx, bson.M{"vendorCode": code}).Decode(&vendor)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *VendorStore) List(ctx context.Context) ([]models.Vendor, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}
	if vendors == nil {
		vendors = []models.Vendor{}
	}
	return vendors, nil
}

func (s *VendorStore) Update(ctx context.Context, vendor *models.Vendor) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": vendor.ID}, vendor)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *VendorStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

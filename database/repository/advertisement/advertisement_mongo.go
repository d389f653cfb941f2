package adRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/bol3ezzz/spalux-backend/database"
	"github.com/bol3ezzz/spalux-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdvertisementRepo implements AdvertisementRepository using MongoDB.
type MongoAdvertisementRepo struct {
	coll *mongo.Collection
}

// NewMongoAdvertisementRepo creates a new AdvertisementRepository using MongoDB.
func NewMongoAdvertisementRepo() AdvertisementRepository {
	coll := database.MongoClient.Database("spalux").Collection("advertisements")
	repo := &MongoAdvertisementRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoAdvertisementRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "subCategory", Value: 1}}},
		{Keys: bson.D{{Key: "governorate", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "subscriptionEndDate", Value: 1}}},
		{Keys: bson.D{{Key: "displayOrder", Value: -1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAdvertisementRepo) Create(ad *models.Advertisement) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	ad.CreatedAt = now
	ad.UpdatedAt = now
	if ad.Images == nil {
		ad.Images = []string{}
	}
	if ad.Videos == nil {
		ad.Videos = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, ad); err != nil {
		return fmt.Errorf("failed to insert advertisement: %w", err)
	}
	return nil
}

// GetByID retrieves an advertisement by its unique ID. Returns (nil, nil)
// when no document matches.
func (r *MongoAdvertisementRepo) GetByID(id string) (*models.Advertisement, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ad models.Advertisement
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ad); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch advertisement with id %s: %w", id, err)
	}
	return &ad, nil
}

// Update applies the given $set document and returns the updated entity.
// Returns (nil, nil) when no document matches.
func (r *MongoAdvertisementRepo) Update(id string, set bson.M) (*models.Advertisement, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ad models.Advertisement
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&ad)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update advertisement with id %s: %w", id, err)
	}
	return &ad, nil
}

func (r *MongoAdvertisementRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete advertisement with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetAll returns every advertisement, newest first, including inactive and
// expired ones. Used by the admin dashboard.
func (r *MongoAdvertisementRepo) GetAll() ([]models.Advertisement, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve advertisements: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

// DeactivateExpired flips isActive off for every advertisement whose
// subscription has lapsed. Public visibility does not depend on this sweep;
// it only keeps the stored flag honest for the admin view.
func (r *MongoAdvertisementRepo) DeactivateExpired(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"isActive":            true,
		"subscriptionEndDate": bson.M{"$lt": now},
	}
	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": now,
	}})
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired advertisements: %w", err)
	}
	return res.ModifiedCount, nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]models.Advertisement, error) {
	var ads []models.Advertisement
	for cursor.Next(ctx) {
		var ad models.Advertisement
		if err := cursor.Decode(&ad); err != nil {
			return nil, fmt.Errorf("failed to decode advertisement: %w", err)
		}
		ads = append(ads, ad)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ads, nil
}

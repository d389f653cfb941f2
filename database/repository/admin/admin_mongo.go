package adminRepo

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

// AdminRepository defines admin account lookups used by authentication.
type AdminRepository interface {
	GetByLogin(login string) (*models.Admin, error)
	Create(admin *models.Admin) error
}

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new AdminRepository using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	coll := database.MongoClient.Database("spalux").Collection("admins")
	repo := &MongoAdminRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		fmt.Printf("failed to create admin indexes: %v\n", err)
	}
	return repo
}

// GetByLogin fetches an admin by username or email. Returns (nil, nil) when
// no account matches.
func (r *MongoAdminRepo) GetByLogin(login string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"username": login},
		{"email": login},
	}}
	var admin models.Admin
	if err := r.coll.FindOne(ctx, filter).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin %s: %w", login, err)
	}
	return &admin, nil
}

func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	admin.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

package adRepo

import (
	"fmt"
	"time"

	"github.com/bol3ezzz/spalux-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindPublic returns the page of visible advertisements matching the query.
func (r *MongoAdvertisementRepo) FindPublic(q PublicQuery) ([]models.Advertisement, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(publicSort())
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}

	cursor, err := r.coll.Find(ctx, BuildPublicFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query public advertisements: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

// CountPublic returns the total number of visible advertisements matching the
// query, ignoring pagination.
func (r *MongoAdvertisementRepo) CountPublic(q PublicQuery) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, BuildPublicFilter(q))
	if err != nil {
		return 0, fmt.Errorf("failed to count public advertisements: %w", err)
	}
	return total, nil
}

// RandomPublic draws one advertisement uniformly at random from the visible
// set. Returns (nil, nil) when the filtered set is empty.
func (r *MongoAdvertisementRepo) RandomPublic(q PublicQuery) (*models.Advertisement, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: BuildPublicFilter(q)}},
		bson.D{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample advertisement: %w", err)
	}
	defer cursor.Close(ctx)

	ads, err := decodeAll(ctx, cursor)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, nil
	}
	return &ads[0], nil
}

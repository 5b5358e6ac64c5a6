package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sahyatri/sahyatri-backend/internal/models"
)

// Repository defines persistence operations for users
type Repository interface {
	UpsertByAuth0ID(ctx context.Context, auth0ID string, fields bson.M) (*models.User, error)
	GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new repository for the given collection
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// UpsertByAuth0ID applies fields to the user document keyed by auth0Id,
// inserting it when absent. A single FindOneAndUpdate with upsert keeps the
// operation atomic; there is no read-then-write window. On insert the driver
// copies auth0Id from the equality filter into the new document.
func (r *MongoRepository) UpsertByAuth0ID(ctx context.Context, auth0ID string, fields bson.M) (*models.User, error) {
	filter := bson.M{"auth0Id": auth0ID}
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated models.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"auth0Id": auth0ID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

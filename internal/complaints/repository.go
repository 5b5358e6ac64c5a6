package complaints

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahyatri/sahyatri-backend/internal/models"
)

// Repository defines persistence operations for complaints
type Repository interface {
	Insert(ctx context.Context, c *models.Complaint) error
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// Insert stores the complaint as a new document and stamps the generated id
// back onto it.
func (r *MongoRepository) Insert(ctx context.Context, c *models.Complaint) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

package user_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindUsersRepository handles the superuser user listing
type FindUsersRepository struct {
	Db *mongo.Database
}

// NewFindUsersRepository creates a new FindUsersRepository
func NewFindUsersRepository(db *mongo.Database) *FindUsersRepository {
	return &FindUsersRepository{Db: db}
}

// Find returns users matching an optional name/email search, newest first,
// along with the total match count before pagination.
func (r *FindUsersRepository) Find(filters *usecase.FindUsersInputRepository) ([]models.User, int64, error) {
	collection := r.Db.Collection("users")

	filter := bson.M{}
	if filters.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filters.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filters.Search, "$options": "i"}},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if filters.Limit > 0 {
		page := filters.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filters.Limit)).SetLimit(int64(filters.Limit))
	}

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

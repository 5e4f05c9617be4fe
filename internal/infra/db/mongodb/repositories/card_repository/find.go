package card_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindCardsRepository handles listing a user's active cards
type FindCardsRepository struct {
	Db *mongo.Database
}

// NewFindCardsRepository creates a new FindCardsRepository
func NewFindCardsRepository(db *mongo.Database) *FindCardsRepository {
	return &FindCardsRepository{Db: db}
}

// Find returns the user's active cards, newest first. Soft-deleted cards are
// excluded.
func (r *FindCardsRepository) Find(userId primitive.ObjectID) ([]models.Card, error) {
	collection := r.Db.Collection("cards")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cards []models.Card
	if err = cursor.All(ctx, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

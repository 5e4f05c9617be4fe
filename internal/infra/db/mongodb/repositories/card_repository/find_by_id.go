package card_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindCardByIdRepository handles fetching a card by its ID
type FindCardByIdRepository struct {
	Db *mongo.Database
}

// NewFindCardByIdRepository creates a new FindCardByIdRepository
func NewFindCardByIdRepository(db *mongo.Database) *FindCardByIdRepository {
	return &FindCardByIdRepository{Db: db}
}

// Find returns a card by its ID and owner, or nil when no such card exists.
// Soft-deleted cards are still returned so payment history stays reachable.
func (r *FindCardByIdRepository) Find(cardId primitive.ObjectID, userId primitive.ObjectID) (*models.Card, error) {
	collection := r.Db.Collection("cards")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var card models.Card
	err := collection.FindOne(ctx, bson.M{"_id": cardId, "user_id": userId}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &card, nil
}

package transaction_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindTransactionsByCardIdRepository handles fetching a card's transaction history
type FindTransactionsByCardIdRepository struct {
	Db *mongo.Database
}

// NewFindTransactionsByCardIdRepository creates a new FindTransactionsByCardIdRepository
func NewFindTransactionsByCardIdRepository(db *mongo.Database) *FindTransactionsByCardIdRepository {
	return &FindTransactionsByCardIdRepository{Db: db}
}

// FindByCardId returns all of the user's transactions tied to a card, newest first
func (r *FindTransactionsByCardIdRepository) FindByCardId(cardId primitive.ObjectID, userId primitive.ObjectID) ([]models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := collection.Find(ctx, bson.M{"card_id": cardId, "user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

package transaction_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindTransactionByIdRepository handles fetching a transaction by its ID
type FindTransactionByIdRepository struct {
	Db *mongo.Database
}

// NewFindTransactionByIdRepository creates a new FindTransactionByIdRepository
func NewFindTransactionByIdRepository(db *mongo.Database) *FindTransactionByIdRepository {
	return &FindTransactionByIdRepository{Db: db}
}

// Find returns a transaction by its ID and owner, or nil when no such
// transaction exists.
func (r *FindTransactionByIdRepository) Find(transactionId primitive.ObjectID, userId primitive.ObjectID) (*models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var transaction models.Transaction
	err := collection.FindOne(ctx, bson.M{"_id": transactionId, "user_id": userId}).Decode(&transaction)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}

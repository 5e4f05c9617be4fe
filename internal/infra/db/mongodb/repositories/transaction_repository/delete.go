package transaction_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteTransactionRepository handles deleting transactions
type DeleteTransactionRepository struct {
	Db *mongo.Database
}

// NewDeleteTransactionRepository creates a new DeleteTransactionRepository
func NewDeleteTransactionRepository(db *mongo.Database) *DeleteTransactionRepository {
	return &DeleteTransactionRepository{Db: db}
}

// Delete removes a transaction. Deleting never reaches back into the card it
// accrued against.
func (r *DeleteTransactionRepository) Delete(transactionId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": transactionId, "user_id": userId})
	return err
}

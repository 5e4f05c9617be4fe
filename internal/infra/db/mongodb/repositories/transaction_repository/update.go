package transaction_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateTransactionRepository handles updating transactions
type UpdateTransactionRepository struct {
	Db *mongo.Database
}

// NewUpdateTransactionRepository creates a new UpdateTransactionRepository
func NewUpdateTransactionRepository(db *mongo.Database) *UpdateTransactionRepository {
	return &UpdateTransactionRepository{Db: db}
}

// Update modifies an existing transaction. Card debt is intentionally left
// untouched: editing a transaction after the fact does not retroactively
// adjust the card it accrued against.
func (r *UpdateTransactionRepository) Update(transactionId primitive.ObjectID, transaction *models.Transaction) (*models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	filter := bson.M{"_id": transactionId, "user_id": transaction.UserId}
	update := bson.M{"$set": bson.M{
		"type":               transaction.Type,
		"category":           transaction.Category,
		"amount":             transaction.Amount,
		"description":        transaction.Description,
		"date":               transaction.Date,
		"payment_method":     transaction.PaymentMethod,
		"card_id":            transaction.CardId,
		"family_member_id":   transaction.FamilyMemberId,
		"is_recurring":       transaction.IsRecurring,
		"recurring_interval": transaction.RecurringInterval,
		"updated_at":         time.Now().UTC(),
	}}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}

	var updated models.Transaction
	err = collection.FindOne(ctx, filter).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

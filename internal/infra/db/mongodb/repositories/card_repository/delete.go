package card_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteCardRepository handles soft-deleting cards
type DeleteCardRepository struct {
	Db *mongo.Database
}

// NewDeleteCardRepository creates a new DeleteCardRepository
func NewDeleteCardRepository(db *mongo.Database) *DeleteCardRepository {
	return &DeleteCardRepository{Db: db}
}

// Delete flips the active flag. Payments and transactions keep referencing
// the card, so it is never removed from the collection.
func (r *DeleteCardRepository) Delete(cardId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("cards")

	filter := bson.M{"_id": cardId, "user_id": userId}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, filter, update)
	return err
}

package card_payment_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindCardPaymentsByCardIdRepository handles fetching a card's payment history
type FindCardPaymentsByCardIdRepository struct {
	Db *mongo.Database
}

// NewFindCardPaymentsByCardIdRepository creates a new FindCardPaymentsByCardIdRepository
func NewFindCardPaymentsByCardIdRepository(db *mongo.Database) *FindCardPaymentsByCardIdRepository {
	return &FindCardPaymentsByCardIdRepository{Db: db}
}

// FindByCardId returns all payments for a card, most recent first
func (r *FindCardPaymentsByCardIdRepository) FindByCardId(cardId primitive.ObjectID) ([]models.CardPayment, error) {
	collection := r.Db.Collection("card_payments")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"payment_date": -1})
	cursor, err := collection.Find(ctx, bson.M{"card_id": cardId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.CardPayment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

package card_payment_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCardPaymentRepository struct {
	Db *mongo.Database
}

func NewCreateCardPaymentRepository(db *mongo.Database) *CreateCardPaymentRepository {
	return &CreateCardPaymentRepository{Db: db}
}

// Create appends a payment record. Payments are never updated or deleted
// afterwards.
func (r *CreateCardPaymentRepository) Create(payment *models.CardPayment) (*models.CardPayment, error) {
	collection := r.Db.Collection("card_payments")

	payment.Id = primitive.NewObjectID()
	payment.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}

	return payment, nil
}

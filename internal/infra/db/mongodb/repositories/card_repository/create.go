package card_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCardRepository struct {
	Db *mongo.Database
}

func NewCreateCardRepository(db *mongo.Database) *CreateCardRepository {
	return &CreateCardRepository{Db: db}
}

// Create inserts a new card. Cards always start with zero debt and the
// monthly flag off, whatever the caller put on the model.
func (r *CreateCardRepository) Create(card *models.Card) (*models.Card, error) {
	collection := r.Db.Collection("cards")

	now := time.Now().UTC()
	card.Id = primitive.NewObjectID()
	card.TotalDebt = 0
	card.MinPaymentDoneThisMonth = false
	card.IsActive = true
	card.Version = 1
	card.CreatedAt = now
	card.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, card)
	if err != nil {
		return nil, err
	}

	return card, nil
}

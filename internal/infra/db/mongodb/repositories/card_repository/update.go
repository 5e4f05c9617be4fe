package card_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateCardRepository handles updating cards with an optimistic version check
type UpdateCardRepository struct {
	Db *mongo.Database
}

// NewUpdateCardRepository creates a new UpdateCardRepository
func NewUpdateCardRepository(db *mongo.Database) *UpdateCardRepository {
	return &UpdateCardRepository{Db: db}
}

// Update replaces the card's mutable fields only when the stored version still
// matches card.Version. A concurrent writer that got there first makes the
// filter miss and the caller receives usecase.ErrVersionConflict to reload and
// retry on fresh state.
func (r *UpdateCardRepository) Update(card *models.Card) (*models.Card, error) {
	collection := r.Db.Collection("cards")

	filter := bson.M{
		"_id":     card.Id,
		"user_id": card.UserId,
		"version": card.Version,
	}
	update := bson.M{
		"$set": bson.M{
			"name":                        card.Name,
			"bank_name":                   card.BankName,
			"card_limit":                  card.CardLimit,
			"total_debt":                  card.TotalDebt,
			"minimum_payment":             card.MinimumPayment,
			"due_date":                    card.DueDate,
			"currency":                    card.Currency,
			"min_payment_done_this_month": card.MinPaymentDoneThisMonth,
			"is_active":                   card.IsActive,
			"updated_at":                  time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, usecase.ErrVersionConflict
	}

	var updated models.Card
	err = collection.FindOne(ctx, bson.M{"_id": card.Id, "user_id": card.UserId}).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

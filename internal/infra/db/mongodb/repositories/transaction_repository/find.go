package transaction_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindTransactionsRepository handles listing transactions with filters and pagination
type FindTransactionsRepository struct {
	Db *mongo.Database
}

// NewFindTransactionsRepository creates a new FindTransactionsRepository
func NewFindTransactionsRepository(db *mongo.Database) *FindTransactionsRepository {
	return &FindTransactionsRepository{Db: db}
}

// Find returns the user's transactions matching the filters, newest first,
// along with the total match count before pagination.
func (r *FindTransactionsRepository) Find(filters *usecase.FindTransactionsInputRepository) ([]models.Transaction, int64, error) {
	collection := r.Db.Collection("transactions")

	filter := bson.M{"user_id": filters.UserId}

	if filters.Month != 0 && filters.Year != 0 {
		startOfMonth := time.Date(filters.Year, time.Month(filters.Month), 1, 0, 0, 0, 0, time.UTC)
		endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Second)
		filter["date"] = bson.M{"$gte": startOfMonth, "$lte": endOfMonth}
	}

	if filters.Type != "" {
		filter["type"] = filters.Type
	}

	if filters.CardId != nil {
		filter["card_id"] = *filters.CardId
	}

	if filters.FamilyMemberId != nil {
		filter["family_member_id"] = *filters.FamilyMemberId
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.M{"date": -1})
	if filters.Limit > 0 {
		page := filters.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filters.Limit)).SetLimit(int64(filters.Limit))
	}

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

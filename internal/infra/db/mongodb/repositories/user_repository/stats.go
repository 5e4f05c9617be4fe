package user_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStatsRepository computes the per-user account figures for the
// superuser panel
type UserStatsRepository struct {
	Db *mongo.Database
}

// NewUserStatsRepository creates a new UserStatsRepository
func NewUserStatsRepository(db *mongo.Database) *UserStatsRepository {
	return &UserStatsRepository{Db: db}
}

// Stats aggregates transaction totals and entity counts for one user
func (r *UserStatsRepository) Stats(userId primitive.ObjectID) (*usecase.UserStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	stats := &usecase.UserStats{}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userId}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Db.Collection("transactions").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Id    string  `bson:"_id"`
		Total float64 `bson:"total"`
		Count int64   `bson:"count"`
	}
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	for _, group := range groups {
		stats.TransactionCount += group.Count
		switch group.Id {
		case models.TransactionTypeIncome:
			stats.TotalIncome = group.Total
		case models.TransactionTypeExpense:
			stats.TotalExpense = group.Total
		}
	}
	stats.TotalBalance = stats.TotalIncome - stats.TotalExpense

	stats.CardCount, err = r.Db.Collection("cards").CountDocuments(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}

	stats.FamilyMemberCount, err = r.Db.Collection("family_members").CountDocuments(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

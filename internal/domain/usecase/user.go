package usecase

import (
	"github.com/ailefin/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FindUsersInputRepository carries the superuser listing filters
type FindUsersInputRepository struct {
	Search string
	Page   int
	Limit  int
}

// FindUsersRepository defines the interface for listing users. The second
// return value is the total count before pagination.
type FindUsersRepository interface {
	Find(filters *FindUsersInputRepository) ([]models.User, int64, error)
}

// FindUserByIdRepository defines the interface for retrieving a single user
type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}

// UserStats aggregates the per-user account figures shown on the superuser panel
type UserStats struct {
	TransactionCount  int64   `json:"transactionCount"`
	TotalIncome       float64 `json:"totalIncome"`
	TotalExpense      float64 `json:"totalExpense"`
	TotalBalance      float64 `json:"totalBalance"`
	CardCount         int64   `json:"cardCount"`
	FamilyMemberCount int64   `json:"familyMemberCount"`
}

// UserStatsRepository defines the interface for computing a user's account figures
type UserStatsRepository interface {
	Stats(userId primitive.ObjectID) (*UserStats, error)
}

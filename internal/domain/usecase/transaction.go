package usecase

import (
	"github.com/ailefin/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FindTransactionsInputRepository carries the list filters for transactions
type FindTransactionsInputRepository struct {
	UserId         primitive.ObjectID
	Month          int
	Year           int
	Type           string
	CardId         *primitive.ObjectID
	FamilyMemberId *primitive.ObjectID
	Page           int
	Limit          int
}

// CreateTransactionRepository defines the interface for creating transactions
type CreateTransactionRepository interface {
	Create(*models.Transaction) (*models.Transaction, error)
}

// FindTransactionsRepository defines the interface for listing transactions
// with filters and pagination. The second return value is the total count
// before pagination.
type FindTransactionsRepository interface {
	Find(filters *FindTransactionsInputRepository) ([]models.Transaction, int64, error)
}

// FindTransactionByIdRepository defines the interface for retrieving a single transaction
type FindTransactionByIdRepository interface {
	Find(transactionId primitive.ObjectID, userId primitive.ObjectID) (*models.Transaction, error)
}

// FindTransactionsByCardIdRepository defines the interface for a card's transaction history
type FindTransactionsByCardIdRepository interface {
	FindByCardId(cardId primitive.ObjectID, userId primitive.ObjectID) ([]models.Transaction, error)
}

// UpdateTransactionRepository defines the interface for updating transactions
type UpdateTransactionRepository interface {
	Update(transactionId primitive.ObjectID, transaction *models.Transaction) (*models.Transaction, error)
}

// DeleteTransactionRepository defines the interface for deleting transactions
type DeleteTransactionRepository interface {
	Delete(transactionId primitive.ObjectID, userId primitive.ObjectID) error
}

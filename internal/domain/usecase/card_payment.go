package usecase

import (
	"github.com/ailefin/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCardPaymentRepository defines the interface for recording card payments
type CreateCardPaymentRepository interface {
	Create(*models.CardPayment) (*models.CardPayment, error)
}

// FindCardPaymentsByCardIdRepository defines the interface for retrieving a card's payment history
type FindCardPaymentsByCardIdRepository interface {
	FindByCardId(cardId primitive.ObjectID) ([]models.CardPayment, error)
}

package usecase

import (
	"errors"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrVersionConflict is returned by UpdateCardRepository when the stored card
// no longer carries the version the caller read. Two requests mutating the
// same card race on a read-modify-write; the loser gets this error and must
// reload before retrying.
var ErrVersionConflict = errors.New("card was modified concurrently")

// CreateCardRepository defines the interface for creating cards
type CreateCardRepository interface {
	Create(*models.Card) (*models.Card, error)
}

// FindCardsRepository defines the interface for retrieving a user's active cards
type FindCardsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Card, error)
}

// FindCardByIdRepository defines the interface for retrieving a single card by ID
type FindCardByIdRepository interface {
	Find(cardId primitive.ObjectID, userId primitive.ObjectID) (*models.Card, error)
}

// UpdateCardRepository defines the interface for updating cards. Update
// replaces the mutable fields only when the stored version matches
// card.Version, bumping the version on success.
type UpdateCardRepository interface {
	Update(card *models.Card) (*models.Card, error)
}

// DeleteCardRepository defines the interface for soft-deleting cards
type DeleteCardRepository interface {
	Delete(cardId primitive.ObjectID, userId primitive.ObjectID) error
}

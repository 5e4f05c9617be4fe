package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardPayment is an append-only ledger entry: payments are created once and
// never edited or deleted afterwards.
type CardPayment struct {
	Id               primitive.ObjectID `json:"id" bson:"_id"`
	UserId           primitive.ObjectID `json:"userId" bson:"user_id"`
	CardId           primitive.ObjectID `json:"cardId" bson:"card_id"`
	Amount           float64            `json:"amount" bson:"amount"`
	PaymentDate      time.Time          `json:"paymentDate" bson:"payment_date"`
	Description      string             `json:"description,omitempty" bson:"description"`
	PaymentMethod    string             `json:"paymentMethod" bson:"payment_method"` // BANK_TRANSFER | CASH | OTHER
	IsMinimumPayment bool               `json:"isMinimumPayment" bson:"is_minimum_payment"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
}

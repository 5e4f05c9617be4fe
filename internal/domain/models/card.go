package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Card struct {
	Id                      primitive.ObjectID `json:"id" bson:"_id"`
	UserId                  primitive.ObjectID `json:"userId" bson:"user_id"`
	Name                    string             `json:"name" bson:"name"`
	BankName                string             `json:"bankName,omitempty" bson:"bank_name"`
	CardLimit               *float64           `json:"cardLimit,omitempty" bson:"card_limit"`
	TotalDebt               float64            `json:"totalDebt" bson:"total_debt"`
	MinimumPayment          float64            `json:"minimumPayment" bson:"minimum_payment"`
	DueDate                 time.Time          `json:"dueDate" bson:"due_date"`
	Currency                string             `json:"currency" bson:"currency"` // TRY | USD | EUR
	MinPaymentDoneThisMonth bool               `json:"minPaymentDoneThisMonth" bson:"min_payment_done_this_month"`
	IsActive                bool               `json:"isActive" bson:"is_active"`
	Version                 int64              `json:"-" bson:"version"`
	CreatedAt               time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt               time.Time          `json:"updatedAt" bson:"updated_at"`
}

// AvailableLimit returns limit minus debt, floored at zero. Cards without a
// configured limit have no available limit and return nil.
func (c *Card) AvailableLimit() *float64 {
	if c.CardLimit == nil {
		return nil
	}
	available := math.Max(0, *c.CardLimit-c.TotalDebt)
	return &available
}

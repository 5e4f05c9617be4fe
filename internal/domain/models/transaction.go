package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// CardPaymentCategory labels the mirrored expense transaction created for
// every card payment.
const CardPaymentCategory = "CARD_PAYMENT"

type Transaction struct {
	Id                primitive.ObjectID  `json:"id" bson:"_id"`
	UserId            primitive.ObjectID  `json:"userId" bson:"user_id"`
	Type              string              `json:"type" bson:"type"` // INCOME | EXPENSE
	Category          string              `json:"category" bson:"category"`
	Amount            float64             `json:"amount" bson:"amount"`
	Description       string              `json:"description,omitempty" bson:"description"`
	Date              time.Time           `json:"date" bson:"date"`
	PaymentMethod     string              `json:"paymentMethod" bson:"payment_method"` // CASH | CARD | BANK_TRANSFER | OTHER
	CardId            *primitive.ObjectID `json:"cardId,omitempty" bson:"card_id"`
	FamilyMemberId    *primitive.ObjectID `json:"familyMemberId,omitempty" bson:"family_member_id"`
	IsRecurring       bool                `json:"isRecurring" bson:"is_recurring"`
	RecurringInterval string              `json:"recurringInterval,omitempty" bson:"recurring_interval"` // WEEKLY | MONTHLY | YEARLY
	CreatedAt         time.Time           `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updated_at"`
}

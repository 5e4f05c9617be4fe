package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/cardcycle"
	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTransactionController handles creating transactions. Expenses charged
// to a card also accrue onto that card's debt.
type CreateTransactionController struct {
	Validate                    *validator.Validate
	CreateTransactionRepository usecase.CreateTransactionRepository
	FindCardByIdRepository      usecase.FindCardByIdRepository
	UpdateCardRepository        usecase.UpdateCardRepository
	Clock                       usecase.Clock
}

// NewCreateTransactionController initializes a CreateTransactionController
func NewCreateTransactionController(
	createTransactionRepository usecase.CreateTransactionRepository,
	findCardByIdRepository usecase.FindCardByIdRepository,
	updateCardRepository usecase.UpdateCardRepository,
	clock usecase.Clock,
) *CreateTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateTransactionController{
		Validate:                    validate,
		CreateTransactionRepository: createTransactionRepository,
		FindCardByIdRepository:      findCardByIdRepository,
		UpdateCardRepository:        updateCardRepository,
		Clock:                       clock,
	}
}

// CreateTransactionControllerBody defines the expected body for creating a transaction
type CreateTransactionControllerBody struct {
	Type              string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category          string  `json:"category" validate:"required,min=1,max=50"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Description       string  `json:"description" validate:"omitempty,max=200"`
	Date              string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod     string  `json:"paymentMethod" validate:"omitempty,oneof=CASH CARD BANK_TRANSFER OTHER"`
	CardId            string  `json:"cardId" validate:"omitempty,len=24,hexadecimal"`
	FamilyMemberId    string  `json:"familyMemberId" validate:"omitempty,len=24,hexadecimal"`
	IsRecurring       bool    `json:"isRecurring"`
	RecurringInterval string  `json:"recurringInterval" validate:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
}

// InsufficientLimitResponse reports a rejected card expense together with the
// limit still available on the card.
type InsufficientLimitResponse struct {
	Error          string  `json:"error"`
	AvailableLimit float64 `json:"availableLimit"`
	Currency       string  `json:"currency"`
}

// Handle processes the HTTP request for creating a transaction
func (c *CreateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateTransactionControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	date := c.Clock.Now()
	if body.Date != "" {
		date, err = time.Parse("2006-01-02", body.Date)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid date format",
			}, http.StatusBadRequest)
		}
	}

	paymentMethod := body.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "CASH"
	}

	transaction := &models.Transaction{
		UserId:            userId,
		Type:              body.Type,
		Category:          body.Category,
		Amount:            body.Amount,
		Description:       body.Description,
		Date:              date,
		PaymentMethod:     paymentMethod,
		IsRecurring:       body.IsRecurring,
		RecurringInterval: body.RecurringInterval,
	}

	if body.FamilyMemberId != "" {
		familyMemberId, err := primitive.ObjectIDFromHex(body.FamilyMemberId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid family member ID format",
			}, http.StatusBadRequest)
		}
		transaction.FamilyMemberId = &familyMemberId
	}

	var accruedCard *models.Card
	if body.CardId != "" {
		cardId, err := primitive.ObjectIDFromHex(body.CardId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid card ID format",
			}, http.StatusBadRequest)
		}
		transaction.CardId = &cardId
		transaction.PaymentMethod = "CARD"

		if body.Type == models.TransactionTypeExpense {
			accruedCard, err = c.accrueOnCard(cardId, userId, body.Amount)
			if err != nil {
				return c.accrualErrorResponse(err)
			}
		}
	}

	created, err := c.CreateTransactionRepository.Create(transaction)
	if err != nil {
		if accruedCard != nil {
			c.compensateAccrual(*accruedCard, body.Amount)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(created, http.StatusCreated)
}

// accrueOnCard loads the card, applies the expense to its debt and persists
// the result. A stale version gets one refetch and replay before giving up.
func (c *CreateTransactionController) accrueOnCard(cardId, userId primitive.ObjectID, amount float64) (*models.Card, error) {
	card, err := c.FindCardByIdRepository.Find(cardId, userId)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, errCardNotFound
	}

	next, err := cardcycle.Accrue(*card, amount)
	if err != nil {
		return nil, err
	}

	updated, err := c.UpdateCardRepository.Update(&next)
	if err != usecase.ErrVersionConflict {
		return updated, err
	}

	fresh, err := c.FindCardByIdRepository.Find(cardId, userId)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, usecase.ErrVersionConflict
	}

	next, err = cardcycle.Accrue(*fresh, amount)
	if err != nil {
		return nil, err
	}
	return c.UpdateCardRepository.Update(&next)
}

// compensateAccrual undoes a debt accrual whose transaction failed to persist.
// Best effort only, a conflict here means someone else already moved the card.
func (c *CreateTransactionController) compensateAccrual(card models.Card, amount float64) {
	card.TotalDebt -= amount
	if card.TotalDebt < 0 {
		card.TotalDebt = 0
	}
	c.UpdateCardRepository.Update(&card) //nolint:errcheck
}

var errCardNotFound = errors.New("card not found")

func (c *CreateTransactionController) accrualErrorResponse(err error) *presentationProtocols.HttpResponse {
	var limitErr *cardcycle.InsufficientLimitError
	switch {
	case errors.As(err, &limitErr):
		return helpers.CreateResponse(&InsufficientLimitResponse{
			Error:          "insufficient card limit",
			AvailableLimit: limitErr.AvailableLimit,
			Currency:       limitErr.Currency,
		}, http.StatusBadRequest)
	case errors.Is(err, errCardNotFound):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "card not found",
		}, http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionConflict):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "card was modified concurrently, try again",
		}, http.StatusConflict)
	default:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating card debt",
		}, http.StatusInternalServerError)
	}
}

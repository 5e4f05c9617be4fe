package card_payment

import (
	"encoding/json"
	"fmt"
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

// CreateCardPaymentController records a payment against a card, applies the
// due-date rollover rules and mirrors the payment into the transaction history
type CreateCardPaymentController struct {
	Validate                    *validator.Validate
	FindCardByIdRepository      usecase.FindCardByIdRepository
	CreateCardPaymentRepository usecase.CreateCardPaymentRepository
	UpdateCardRepository        usecase.UpdateCardRepository
	CreateTransactionRepository usecase.CreateTransactionRepository
	Clock                       usecase.Clock
}

// NewCreateCardPaymentController initializes a CreateCardPaymentController
func NewCreateCardPaymentController(
	findCardByIdRepository usecase.FindCardByIdRepository,
	createCardPaymentRepository usecase.CreateCardPaymentRepository,
	updateCardRepository usecase.UpdateCardRepository,
	createTransactionRepository usecase.CreateTransactionRepository,
	clock usecase.Clock,
) *CreateCardPaymentController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateCardPaymentController{
		Validate:                    validate,
		FindCardByIdRepository:      findCardByIdRepository,
		CreateCardPaymentRepository: createCardPaymentRepository,
		UpdateCardRepository:        updateCardRepository,
		CreateTransactionRepository: createTransactionRepository,
		Clock:                       clock,
	}
}

// CreateCardPaymentControllerBody defines the expected body for recording a payment
type CreateCardPaymentControllerBody struct {
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate      string  `json:"paymentDate" validate:"omitempty,datetime=2006-01-02"`
	Description      string  `json:"description" validate:"omitempty,max=200"`
	PaymentMethod    string  `json:"paymentMethod" validate:"omitempty,oneof=BANK_TRANSFER CASH OTHER"`
	IsMinimumPayment bool    `json:"isMinimumPayment"`
}

// Handle processes the HTTP request for recording a card payment
func (c *CreateCardPaymentController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	cardId, err := primitive.ObjectIDFromHex(r.Req.PathValue("cardId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid card ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	var body CreateCardPaymentControllerBody
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

	card, err := c.FindCardByIdRepository.Find(cardId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding card",
		}, http.StatusInternalServerError)
	}
	if card == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "card not found",
		}, http.StatusNotFound)
	}

	paymentDate := c.Clock.Now()
	if body.PaymentDate != "" {
		paymentDate, err = time.Parse("2006-01-02", body.PaymentDate)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid payment date format",
			}, http.StatusBadRequest)
		}
	}

	paymentMethod := body.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "BANK_TRANSFER"
	}

	payment, err := c.CreateCardPaymentRepository.Create(&models.CardPayment{
		UserId:           userId,
		CardId:           cardId,
		Amount:           body.Amount,
		PaymentDate:      paymentDate,
		Description:      body.Description,
		PaymentMethod:    paymentMethod,
		IsMinimumPayment: body.IsMinimumPayment,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when recording payment",
		}, http.StatusInternalServerError)
	}

	event := cardcycle.PaymentEvent{
		Amount:           body.Amount,
		PaymentDate:      paymentDate,
		IsMinimumPayment: body.IsMinimumPayment,
	}

	updatedCard, err := c.applyPayment(*card, event)
	if err == usecase.ErrVersionConflict {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "card was modified concurrently, please retry",
		}, http.StatusConflict)
	}
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating card",
		}, http.StatusInternalServerError)
	}

	description := fmt.Sprintf("Card payment: %s", card.Name)
	if body.Description != "" {
		description = fmt.Sprintf("%s - %s", description, body.Description)
	}

	// mirror the payment into the unified transaction history; editing or
	// deleting this mirror later never reaches back into the card
	_, err = c.CreateTransactionRepository.Create(&models.Transaction{
		UserId:        userId,
		Type:          models.TransactionTypeExpense,
		Category:      models.CardPaymentCategory,
		Amount:        body.Amount,
		Description:   description,
		Date:          paymentDate,
		PaymentMethod: "CARD",
		CardId:        &cardId,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when recording mirrored transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]any{
		"payment": payment,
		"card":    updatedCard,
	}, http.StatusCreated)
}

// applyPayment runs the read-compute-write sequence against the card. A
// concurrent writer makes the versioned update miss; the sequence is then
// retried once on reloaded state before the conflict is surfaced.
func (c *CreateCardPaymentController) applyPayment(card models.Card, event cardcycle.PaymentEvent) (*models.Card, error) {
	next := cardcycle.ApplyPayment(card, event)

	updated, err := c.UpdateCardRepository.Update(&next)
	if err != usecase.ErrVersionConflict {
		return updated, err
	}

	fresh, err := c.FindCardByIdRepository.Find(card.Id, card.UserId)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, usecase.ErrVersionConflict
	}

	next = cardcycle.ApplyPayment(*fresh, event)
	return c.UpdateCardRepository.Update(&next)
}

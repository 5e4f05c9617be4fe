package card_payment

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCardPaymentsController lists a card's payment history
type GetCardPaymentsController struct {
	FindCardByIdRepository             usecase.FindCardByIdRepository
	FindCardPaymentsByCardIdRepository usecase.FindCardPaymentsByCardIdRepository
}

// NewGetCardPaymentsController initializes a GetCardPaymentsController
func NewGetCardPaymentsController(
	findCardByIdRepository usecase.FindCardByIdRepository,
	findCardPaymentsRepository usecase.FindCardPaymentsByCardIdRepository,
) *GetCardPaymentsController {
	return &GetCardPaymentsController{
		FindCardByIdRepository:             findCardByIdRepository,
		FindCardPaymentsByCardIdRepository: findCardPaymentsRepository,
	}
}

// Handle processes the HTTP request for listing a card's payments
func (c *GetCardPaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	payments, err := c.FindCardPaymentsByCardIdRepository.FindByCardId(cardId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding card payments",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]any{"payments": payments}, http.StatusOK)
}

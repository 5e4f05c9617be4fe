package card

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCardTransactionsController lists a card's transaction history, covering
// both accrued expenses and mirrored payment transactions
type GetCardTransactionsController struct {
	FindCardByIdRepository             usecase.FindCardByIdRepository
	FindTransactionsByCardIdRepository usecase.FindTransactionsByCardIdRepository
}

// NewGetCardTransactionsController initializes a GetCardTransactionsController
func NewGetCardTransactionsController(
	findCardByIdRepository usecase.FindCardByIdRepository,
	findTransactionsRepository usecase.FindTransactionsByCardIdRepository,
) *GetCardTransactionsController {
	return &GetCardTransactionsController{
		FindCardByIdRepository:             findCardByIdRepository,
		FindTransactionsByCardIdRepository: findTransactionsRepository,
	}
}

// Handle processes the HTTP request for listing a card's transactions
func (c *GetCardTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	transactions, err := c.FindTransactionsByCardIdRepository.FindByCardId(cardId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding card transactions",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]any{"transactions": transactions}, http.StatusOK)
}

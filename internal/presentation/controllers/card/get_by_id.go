package card

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCardByIdController handles retrieving a single card
type GetCardByIdController struct {
	FindCardByIdRepository usecase.FindCardByIdRepository
}

// NewGetCardByIdController initializes a GetCardByIdController
func NewGetCardByIdController(findCardByIdRepository usecase.FindCardByIdRepository) *GetCardByIdController {
	return &GetCardByIdController{FindCardByIdRepository: findCardByIdRepository}
}

// Handle processes the HTTP request for retrieving a card by ID
func (c *GetCardByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	return helpers.CreateResponse(card, http.StatusOK)
}

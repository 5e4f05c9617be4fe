package card

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteCardController handles soft-deleting cards
type DeleteCardController struct {
	DeleteCardRepository   usecase.DeleteCardRepository
	FindCardByIdRepository usecase.FindCardByIdRepository
}

// NewDeleteCardController initializes a DeleteCardController
func NewDeleteCardController(
	deleteRepo usecase.DeleteCardRepository,
	findByIdRepo usecase.FindCardByIdRepository,
) *DeleteCardController {
	return &DeleteCardController{
		DeleteCardRepository:   deleteRepo,
		FindCardByIdRepository: findByIdRepo,
	}
}

// Handle processes the HTTP request to soft-delete a card
func (c *DeleteCardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	cardId, err := primitive.ObjectIDFromHex(r.Req.PathValue("cardId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid card ID format"}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid user ID format"}, http.StatusBadRequest)
	}

	card, err := c.FindCardByIdRepository.Find(cardId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding card"}, http.StatusInternalServerError)
	}
	if card == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "card not found"}, http.StatusNotFound)
	}

	if err := c.DeleteCardRepository.Delete(cardId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when deleting card"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]string{"message": "card deleted"}, http.StatusOK)
}

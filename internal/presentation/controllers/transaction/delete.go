package transaction

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteTransactionController handles deleting a transaction. The card debt a
// deleted expense accrued stays on the card.
type DeleteTransactionController struct {
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
	DeleteTransactionRepository   usecase.DeleteTransactionRepository
}

// NewDeleteTransactionController initializes a DeleteTransactionController
func NewDeleteTransactionController(
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	deleteTransactionRepository usecase.DeleteTransactionRepository,
) *DeleteTransactionController {
	return &DeleteTransactionController{
		FindTransactionByIdRepository: findTransactionByIdRepository,
		DeleteTransactionRepository:   deleteTransactionRepository,
	}
}

// Handle processes the HTTP request for deleting a transaction
func (c *DeleteTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	transactionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("transactionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid transaction ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	existing, err := c.FindTransactionByIdRepository.Find(transactionId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transaction",
		}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "transaction not found",
		}, http.StatusNotFound)
	}

	if err := c.DeleteTransactionRepository.Delete(transactionId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}

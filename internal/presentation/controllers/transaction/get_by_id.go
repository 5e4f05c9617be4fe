package transaction

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTransactionByIdController handles retrieving a single transaction
type GetTransactionByIdController struct {
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
}

// NewGetTransactionByIdController initializes a GetTransactionByIdController
func NewGetTransactionByIdController(
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
) *GetTransactionByIdController {
	return &GetTransactionByIdController{
		FindTransactionByIdRepository: findTransactionByIdRepository,
	}
}

// Handle processes the HTTP request for retrieving a transaction
func (c *GetTransactionByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	transaction, err := c.FindTransactionByIdRepository.Find(transactionId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transaction",
		}, http.StatusInternalServerError)
	}
	if transaction == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "transaction not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(transaction, http.StatusOK)
}

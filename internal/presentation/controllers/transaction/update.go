package transaction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateTransactionController handles editing a transaction's descriptive
// fields. Card debt already accrued stays as it is, edits never replay the
// accrual.
type UpdateTransactionController struct {
	Validate                      *validator.Validate
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
	UpdateTransactionRepository   usecase.UpdateTransactionRepository
}

// NewUpdateTransactionController initializes an UpdateTransactionController
func NewUpdateTransactionController(
	findTransactionByIdRepository usecase.FindTransactionByIdRepository,
	updateTransactionRepository usecase.UpdateTransactionRepository,
) *UpdateTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateTransactionController{
		Validate:                      validate,
		FindTransactionByIdRepository: findTransactionByIdRepository,
		UpdateTransactionRepository:   updateTransactionRepository,
	}
}

// UpdateTransactionControllerBody defines the expected body for updating a transaction
type UpdateTransactionControllerBody struct {
	Category          string  `json:"category" validate:"required,min=1,max=50"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Description       string  `json:"description" validate:"omitempty,max=200"`
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod     string  `json:"paymentMethod" validate:"required,oneof=CASH CARD BANK_TRANSFER OTHER"`
	FamilyMemberId    string  `json:"familyMemberId" validate:"omitempty,len=24,hexadecimal"`
	IsRecurring       bool    `json:"isRecurring"`
	RecurringInterval string  `json:"recurringInterval" validate:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
}

// Handle processes the HTTP request for updating a transaction
func (c *UpdateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	transactionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("transactionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid transaction ID format",
		}, http.StatusBadRequest)
	}

	var body UpdateTransactionControllerBody
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

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid date format",
		}, http.StatusBadRequest)
	}

	existing.Category = body.Category
	existing.Amount = body.Amount
	existing.Description = body.Description
	existing.Date = date
	existing.PaymentMethod = body.PaymentMethod
	existing.IsRecurring = body.IsRecurring
	existing.RecurringInterval = body.RecurringInterval

	existing.FamilyMemberId = nil
	if body.FamilyMemberId != "" {
		familyMemberId, err := primitive.ObjectIDFromHex(body.FamilyMemberId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid family member ID format",
			}, http.StatusBadRequest)
		}
		existing.FamilyMemberId = &familyMemberId
	}

	updated, err := c.UpdateTransactionRepository.Update(transactionId, existing)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}

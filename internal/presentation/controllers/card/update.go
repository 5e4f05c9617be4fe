package card

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

// UpdateCardController handles updating a card's descriptive fields
type UpdateCardController struct {
	Validate               *validator.Validate
	UpdateCardRepository   usecase.UpdateCardRepository
	FindCardByIdRepository usecase.FindCardByIdRepository
}

// NewUpdateCardController initializes a new UpdateCardController
func NewUpdateCardController(
	updateRepo usecase.UpdateCardRepository,
	findByIdRepo usecase.FindCardByIdRepository,
) *UpdateCardController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateCardController{
		Validate:               validate,
		UpdateCardRepository:   updateRepo,
		FindCardByIdRepository: findByIdRepo,
	}
}

type UpdateCardControllerBody struct {
	Name           string   `json:"name" validate:"required,min=1,max=50"`
	BankName       string   `json:"bankName" validate:"omitempty,max=50"`
	CardLimit      *float64 `json:"cardLimit" validate:"omitempty,min=0"`
	DueDate        string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	MinimumPayment float64  `json:"minimumPayment" validate:"min=0"`
	Currency       string   `json:"currency" validate:"required,oneof=TRY USD EUR"`
}

// Handle processes the HTTP request to update a card. Debt, the monthly flag
// and the active flag are owned by the payment and sweep flows and cannot be
// set here.
func (c *UpdateCardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	cardId, err := primitive.ObjectIDFromHex(r.Req.PathValue("cardId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid card ID format"}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid user ID format"}, http.StatusBadRequest)
	}

	existing, err := c.FindCardByIdRepository.Find(cardId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding card"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "card not found"}, http.StatusNotFound)
	}

	var body UpdateCardControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	dueDate, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid due date format"}, http.StatusBadRequest)
	}

	existing.Name = body.Name
	existing.BankName = body.BankName
	existing.CardLimit = body.CardLimit
	existing.DueDate = dueDate
	existing.MinimumPayment = body.MinimumPayment
	existing.Currency = body.Currency

	updated, err := c.UpdateCardRepository.Update(existing)
	if err == usecase.ErrVersionConflict {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "card was modified concurrently, please retry"}, http.StatusConflict)
	}
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating card"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}

package card

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCardController handles creating new cards
type CreateCardController struct {
	Validate             *validator.Validate
	CreateCardRepository usecase.CreateCardRepository
}

// NewCreateCardController initializes a CreateCardController
func NewCreateCardController(createCardRepository usecase.CreateCardRepository) *CreateCardController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateCardController{
		Validate:             validate,
		CreateCardRepository: createCardRepository,
	}
}

// CreateCardControllerBody defines the expected body for creating a card
type CreateCardControllerBody struct {
	Name           string   `json:"name" validate:"required,min=1,max=50"`
	BankName       string   `json:"bankName" validate:"omitempty,max=50"`
	CardLimit      *float64 `json:"cardLimit" validate:"omitempty,min=0"`
	DueDate        string   `json:"dueDate" validate:"required,datetime=2006-01-02"`
	MinimumPayment float64  `json:"minimumPayment" validate:"min=0"`
	Currency       string   `json:"currency" validate:"omitempty,oneof=TRY USD EUR"`
}

// Handle processes the HTTP request for creating a card
func (c *CreateCardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateCardControllerBody
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

	dueDate, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid due date format",
		}, http.StatusBadRequest)
	}

	currency := body.Currency
	if currency == "" {
		currency = "TRY"
	}

	card, err := c.CreateCardRepository.Create(&models.Card{
		UserId:         userId,
		Name:           body.Name,
		BankName:       body.BankName,
		CardLimit:      body.CardLimit,
		DueDate:        dueDate,
		MinimumPayment: body.MinimumPayment,
		Currency:       currency,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating card",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(card, http.StatusCreated)
}

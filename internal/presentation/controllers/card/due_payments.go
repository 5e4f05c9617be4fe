package card

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetDuePaymentsController lists cards whose minimum obligation is still open
// and whose due date has arrived (or passed)
type GetDuePaymentsController struct {
	FindCardsRepository usecase.FindCardsRepository
	Clock               usecase.Clock
}

// NewGetDuePaymentsController initializes a GetDuePaymentsController
func NewGetDuePaymentsController(findCardsRepository usecase.FindCardsRepository, clock usecase.Clock) *GetDuePaymentsController {
	return &GetDuePaymentsController{
		FindCardsRepository: findCardsRepository,
		Clock:               clock,
	}
}

// DuePayment pairs a card with how overdue its payment is
type DuePayment struct {
	Card         models.Card `json:"card"`
	DaysUntilDue int         `json:"daysUntilDue"`
	IsOverdue    bool        `json:"isOverdue"`
}

// Handle processes the HTTP request for listing due payments
func (c *GetDuePaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	cards, err := c.FindCardsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding cards",
		}, http.StatusInternalServerError)
	}

	now := c.Clock.Now()
	tomorrow := now.AddDate(0, 0, 1)

	duePayments := make([]DuePayment, 0)
	for _, card := range cards {
		if card.TotalDebt <= 0 || card.MinPaymentDoneThisMonth || card.DueDate.After(tomorrow) {
			continue
		}

		daysUntilDue := helpers.DaysUntil(now, card.DueDate)
		duePayments = append(duePayments, DuePayment{
			Card:         card,
			DaysUntilDue: daysUntilDue,
			IsOverdue:    daysUntilDue < 0,
		})
	}

	return helpers.CreateResponse(map[string]any{"duePayments": duePayments}, http.StatusOK)
}

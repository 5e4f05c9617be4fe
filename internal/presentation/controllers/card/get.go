package card

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCardsController lists a user's active cards with payment figures
type GetCardsController struct {
	FindCardsRepository                usecase.FindCardsRepository
	FindCardPaymentsByCardIdRepository usecase.FindCardPaymentsByCardIdRepository
	Clock                              usecase.Clock
}

// NewGetCardsController initializes a GetCardsController
func NewGetCardsController(
	findCardsRepository usecase.FindCardsRepository,
	findCardPaymentsRepository usecase.FindCardPaymentsByCardIdRepository,
	clock usecase.Clock,
) *GetCardsController {
	return &GetCardsController{
		FindCardsRepository:                findCardsRepository,
		FindCardPaymentsByCardIdRepository: findCardPaymentsRepository,
		Clock:                              clock,
	}
}

// CardWithPayments is the list item shape returned for each card
type CardWithPayments struct {
	models.Card
	AvailableLimit *float64 `json:"availableLimit,omitempty"`
	TotalPaid      float64  `json:"totalPaid"`
	DaysUntilDue   int      `json:"daysUntilDue"`
	IsPaymentDue   bool     `json:"isPaymentDue"`
}

// Handle processes the HTTP request for listing cards
func (c *GetCardsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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
	cardsWithPayments := make([]CardWithPayments, 0, len(cards))
	for _, card := range cards {
		payments, err := c.FindCardPaymentsByCardIdRepository.FindByCardId(card.Id)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when finding card payments",
			}, http.StatusInternalServerError)
		}

		var totalPaid float64
		for _, payment := range payments {
			totalPaid += payment.Amount
		}

		daysUntilDue := helpers.DaysUntil(now, card.DueDate)
		cardsWithPayments = append(cardsWithPayments, CardWithPayments{
			Card:           card,
			AvailableLimit: card.AvailableLimit(),
			TotalPaid:      totalPaid,
			DaysUntilDue:   daysUntilDue,
			IsPaymentDue:   card.TotalDebt > 0 && !card.MinPaymentDoneThisMonth && daysUntilDue <= 1,
		})
	}

	return helpers.CreateResponse(map[string]any{"cards": cardsWithPayments}, http.StatusOK)
}

package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/cardcycle"
	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetDashboardController assembles the monthly overview. The first dashboard
// load of each calendar month also runs the cycle reset sweep over the user's
// cards before the numbers are read.
type GetDashboardController struct {
	FindCardsRepository         usecase.FindCardsRepository
	UpdateCardRepository        usecase.UpdateCardRepository
	SweepGateRepository         usecase.SweepGateRepository
	FindTransactionsRepository  usecase.FindTransactionsRepository
	FindFamilyMembersRepository usecase.FindFamilyMembersRepository
	Clock                       usecase.Clock
}

// NewGetDashboardController initializes a GetDashboardController
func NewGetDashboardController(
	findCardsRepository usecase.FindCardsRepository,
	updateCardRepository usecase.UpdateCardRepository,
	sweepGateRepository usecase.SweepGateRepository,
	findTransactionsRepository usecase.FindTransactionsRepository,
	findFamilyMembersRepository usecase.FindFamilyMembersRepository,
	clock usecase.Clock,
) *GetDashboardController {
	return &GetDashboardController{
		FindCardsRepository:         findCardsRepository,
		UpdateCardRepository:        updateCardRepository,
		SweepGateRepository:         sweepGateRepository,
		FindTransactionsRepository:  findTransactionsRepository,
		FindFamilyMembersRepository: findFamilyMembersRepository,
		Clock:                       clock,
	}
}

// ChartPoint is one month of the income/expense history chart
type ChartPoint struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
}

// CardSummary is the dashboard view of one card
type CardSummary struct {
	models.Card
	AvailableLimit *float64 `json:"availableLimit"`
	DaysUntilDue   int      `json:"daysUntilDue"`
	IsPaymentDue   bool     `json:"isPaymentDue"`
}

// GetDashboardResponse is the full monthly overview payload
type GetDashboardResponse struct {
	Month              int                  `json:"month"`
	Year               int                  `json:"year"`
	TotalIncome        float64              `json:"totalIncome"`
	TotalExpense       float64              `json:"totalExpense"`
	NetBalance         float64              `json:"netBalance"`
	TotalCardDebt      float64              `json:"totalCardDebt"`
	Categories         map[string]float64   `json:"categories"`
	FamilyMembers      map[string]float64   `json:"familyMembers"`
	Cards              []CardSummary        `json:"cards"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
	ChartData          []ChartPoint         `json:"chartData"`
}

// Handle processes the HTTP request for the dashboard overview
func (c *GetDashboardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	now := c.Clock.Now()
	month := int(now.Month())
	year := now.Year()

	if m := r.UrlParams.Get("month"); m != "" {
		month, err = strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid month",
			}, http.StatusBadRequest)
		}
	}
	if y := r.UrlParams.Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil || year < 1970 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid year",
			}, http.StatusBadRequest)
		}
	}

	c.runCycleSweep(userId, now)

	cards, err := c.FindCardsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding cards",
		}, http.StatusInternalServerError)
	}

	transactions, _, err := c.FindTransactionsRepository.Find(&usecase.FindTransactionsInputRepository{
		UserId: userId,
		Month:  month,
		Year:   year,
		Page:   1,
		Limit:  10000,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}

	familyMembers, err := c.FindFamilyMembersRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving family members",
		}, http.StatusInternalServerError)
	}

	memberNames := make(map[primitive.ObjectID]string, len(familyMembers))
	for _, member := range familyMembers {
		memberNames[member.Id] = member.Name
	}

	response := &GetDashboardResponse{
		Month:         month,
		Year:          year,
		Categories:    make(map[string]float64),
		FamilyMembers: make(map[string]float64),
	}

	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			response.TotalIncome += tx.Amount
		case models.TransactionTypeExpense:
			response.TotalExpense += tx.Amount
			response.Categories[tx.Category] += tx.Amount
			if tx.FamilyMemberId != nil {
				if name, ok := memberNames[*tx.FamilyMemberId]; ok {
					response.FamilyMembers[name] += tx.Amount
				}
			}
		}
	}
	response.NetBalance = response.TotalIncome - response.TotalExpense

	response.Cards = make([]CardSummary, 0, len(cards))
	for _, card := range cards {
		response.TotalCardDebt += card.TotalDebt
		daysUntilDue := helpers.DaysUntil(now, card.DueDate)
		response.Cards = append(response.Cards, CardSummary{
			Card:           card,
			AvailableLimit: card.AvailableLimit(),
			DaysUntilDue:   daysUntilDue,
			IsPaymentDue:   card.TotalDebt > 0 && !card.MinPaymentDoneThisMonth && daysUntilDue <= 1,
		})
	}

	recent := transactions
	if len(recent) > 10 {
		recent = recent[:10]
	}
	response.RecentTransactions = recent
	if response.RecentTransactions == nil {
		response.RecentTransactions = []models.Transaction{}
	}

	chartData, err := c.buildChartData(userId, month, year)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building chart data",
		}, http.StatusInternalServerError)
	}
	response.ChartData = chartData

	return helpers.CreateResponse(response, http.StatusOK)
}

// runCycleSweep advances overdue paid-off cards once per calendar month. The
// gate makes the sweep cheap on every later dashboard load that month, and a
// version conflict just means another request got there first.
//
// The cards are fetched before the gate is taken. A failed fetch must not
// consume the month's single sweep slot, so a later load can still run it.
func (c *GetDashboardController) runCycleSweep(userId primitive.ObjectID, now time.Time) {
	cards, err := c.FindCardsRepository.Find(userId)
	if err != nil {
		return
	}

	acquired, err := c.SweepGateRepository.Acquire(userId, now.Format("2006-01"))
	if err != nil || !acquired {
		return
	}

	for _, card := range cards {
		swept := cardcycle.SweepCard(card, now)
		if swept.DueDate.Equal(card.DueDate) && swept.MinPaymentDoneThisMonth == card.MinPaymentDoneThisMonth {
			continue
		}
		c.UpdateCardRepository.Update(&swept) //nolint:errcheck
	}
}

// buildChartData collects income/expense totals for the requested month and
// the five before it.
func (c *GetDashboardController) buildChartData(userId primitive.ObjectID, month, year int) ([]ChartPoint, error) {
	points := make([]ChartPoint, 0, 6)

	m, y := month, year
	for i := 0; i < 5; i++ {
		m--
		if m < 1 {
			m = 12
			y--
		}
	}

	for i := 0; i < 6; i++ {
		transactions, _, err := c.FindTransactionsRepository.Find(&usecase.FindTransactionsInputRepository{
			UserId: userId,
			Month:  m,
			Year:   y,
			Page:   1,
			Limit:  10000,
		})
		if err != nil {
			return nil, err
		}

		point := ChartPoint{Month: monthLabel(y, m)}
		for _, tx := range transactions {
			switch tx.Type {
			case models.TransactionTypeIncome:
				point.TotalIncome += tx.Amount
			case models.TransactionTypeExpense:
				point.TotalExpense += tx.Amount
			}
		}
		points = append(points, point)

		m++
		if m > 12 {
			m = 1
			y++
		}
	}

	return points, nil
}

func monthLabel(year, month int) string {
	return strconv.Itoa(year) + "-" + twoDigits(month)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

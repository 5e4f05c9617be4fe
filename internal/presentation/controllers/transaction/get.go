package transaction

import (
	"net/http"
	"strconv"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTransactionsController handles listing transactions with filters
type GetTransactionsController struct {
	FindTransactionsRepository usecase.FindTransactionsRepository
	Clock                      usecase.Clock
}

// NewGetTransactionsController initializes a GetTransactionsController
func NewGetTransactionsController(
	findTransactionsRepository usecase.FindTransactionsRepository,
	clock usecase.Clock,
) *GetTransactionsController {
	return &GetTransactionsController{
		FindTransactionsRepository: findTransactionsRepository,
		Clock:                      clock,
	}
}

// GetTransactionsResponse wraps a page of transactions with its pagination metadata
type GetTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
}

// Handle processes the HTTP request for listing transactions
func (c *GetTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	now := c.Clock.Now()
	filters := &usecase.FindTransactionsInputRepository{
		UserId: userId,
		Month:  int(now.Month()),
		Year:   now.Year(),
		Page:   1,
		Limit:  20,
	}

	if month := r.UrlParams.Get("month"); month != "" {
		filters.Month, err = strconv.Atoi(month)
		if err != nil || filters.Month < 1 || filters.Month > 12 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid month",
			}, http.StatusBadRequest)
		}
	}
	if year := r.UrlParams.Get("year"); year != "" {
		filters.Year, err = strconv.Atoi(year)
		if err != nil || filters.Year < 1970 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid year",
			}, http.StatusBadRequest)
		}
	}
	if t := r.UrlParams.Get("type"); t != "" {
		if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid transaction type",
			}, http.StatusBadRequest)
		}
		filters.Type = t
	}
	if cardId := r.UrlParams.Get("cardId"); cardId != "" {
		id, err := primitive.ObjectIDFromHex(cardId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid card ID format",
			}, http.StatusBadRequest)
		}
		filters.CardId = &id
	}
	if familyMemberId := r.UrlParams.Get("familyMemberId"); familyMemberId != "" {
		id, err := primitive.ObjectIDFromHex(familyMemberId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid family member ID format",
			}, http.StatusBadRequest)
		}
		filters.FamilyMemberId = &id
	}
	if page := r.UrlParams.Get("page"); page != "" {
		if filters.Page, err = strconv.Atoi(page); err != nil || filters.Page < 1 {
			filters.Page = 1
		}
	}
	if limit := r.UrlParams.Get("limit"); limit != "" {
		if filters.Limit, err = strconv.Atoi(limit); err != nil || filters.Limit < 1 {
			filters.Limit = 20
		}
		if filters.Limit > 100 {
			filters.Limit = 100
		}
	}

	transactions, total, err := c.FindTransactionsRepository.Find(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return helpers.CreateResponse(&GetTransactionsResponse{
		Transactions: transactions,
		Total:        total,
		Page:         filters.Page,
		Limit:        filters.Limit,
	}, http.StatusOK)
}

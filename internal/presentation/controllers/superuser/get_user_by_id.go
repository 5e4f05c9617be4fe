package superuser

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserByIdController shows one user's account detail on the superuser panel
type GetUserByIdController struct {
	FindUserByIdRepository      usecase.FindUserByIdRepository
	UserStatsRepository         usecase.UserStatsRepository
	FindCardsRepository         usecase.FindCardsRepository
	FindFamilyMembersRepository usecase.FindFamilyMembersRepository
	FindTransactionsRepository  usecase.FindTransactionsRepository
	Clock                       usecase.Clock
}

// NewGetUserByIdController initializes a GetUserByIdController
func NewGetUserByIdController(
	findUserByIdRepository usecase.FindUserByIdRepository,
	userStatsRepository usecase.UserStatsRepository,
	findCardsRepository usecase.FindCardsRepository,
	findFamilyMembersRepository usecase.FindFamilyMembersRepository,
	findTransactionsRepository usecase.FindTransactionsRepository,
	clock usecase.Clock,
) *GetUserByIdController {
	return &GetUserByIdController{
		FindUserByIdRepository:      findUserByIdRepository,
		UserStatsRepository:         userStatsRepository,
		FindCardsRepository:         findCardsRepository,
		FindFamilyMembersRepository: findFamilyMembersRepository,
		FindTransactionsRepository:  findTransactionsRepository,
		Clock:                       clock,
	}
}

// GetUserByIdResponse is the user detail payload
type GetUserByIdResponse struct {
	User               *models.User          `json:"user"`
	Stats              *usecase.UserStats    `json:"stats"`
	Cards              []models.Card         `json:"cards"`
	FamilyMembers      []models.FamilyMember `json:"familyMembers"`
	RecentTransactions []models.Transaction  `json:"recentTransactions"`
}

// Handle processes the HTTP request for a user's account detail
func (c *GetUserByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Req.PathValue("userId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving user",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	stats, err := c.UserStatsRepository.Stats(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when computing user stats",
		}, http.StatusInternalServerError)
	}

	cards, err := c.FindCardsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding cards",
		}, http.StatusInternalServerError)
	}

	familyMembers, err := c.FindFamilyMembersRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving family members",
		}, http.StatusInternalServerError)
	}

	now := c.Clock.Now()
	recent, _, err := c.FindTransactionsRepository.Find(&usecase.FindTransactionsInputRepository{
		UserId: userId,
		Month:  int(now.Month()),
		Year:   now.Year(),
		Page:   1,
		Limit:  10,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}

	if cards == nil {
		cards = []models.Card{}
	}
	if familyMembers == nil {
		familyMembers = []models.FamilyMember{}
	}
	if recent == nil {
		recent = []models.Transaction{}
	}

	return helpers.CreateResponse(&GetUserByIdResponse{
		User:               user,
		Stats:              stats,
		Cards:              cards,
		FamilyMembers:      familyMembers,
		RecentTransactions: recent,
	}, http.StatusOK)
}

package superuser

import (
	"net/http"
	"strconv"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
)

// GetUsersController lists registered users for the superuser panel
type GetUsersController struct {
	FindUsersRepository usecase.FindUsersRepository
	UserStatsRepository usecase.UserStatsRepository
}

// NewGetUsersController initializes a GetUsersController
func NewGetUsersController(
	findUsersRepository usecase.FindUsersRepository,
	userStatsRepository usecase.UserStatsRepository,
) *GetUsersController {
	return &GetUsersController{
		FindUsersRepository: findUsersRepository,
		UserStatsRepository: userStatsRepository,
	}
}

// UserWithStats pairs a user with their account figures
type UserWithStats struct {
	models.User
	Stats *usecase.UserStats `json:"stats"`
}

// GetUsersResponse wraps a page of users with its pagination metadata
type GetUsersResponse struct {
	Users []UserWithStats `json:"users"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// Handle processes the HTTP request for listing users
func (c *GetUsersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filters := &usecase.FindUsersInputRepository{
		Search: r.UrlParams.Get("search"),
		Page:   1,
		Limit:  20,
	}

	if page := r.UrlParams.Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p >= 1 {
			filters.Page = p
		}
	}
	if limit := r.UrlParams.Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l >= 1 {
			filters.Limit = l
		}
		if filters.Limit > 100 {
			filters.Limit = 100
		}
	}

	users, total, err := c.FindUsersRepository.Find(filters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving users",
		}, http.StatusInternalServerError)
	}

	withStats := make([]UserWithStats, 0, len(users))
	for _, user := range users {
		stats, err := c.UserStatsRepository.Stats(user.Id)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when computing user stats",
			}, http.StatusInternalServerError)
		}
		withStats = append(withStats, UserWithStats{User: user, Stats: stats})
	}

	return helpers.CreateResponse(&GetUsersResponse{
		Users: withStats,
		Total: total,
		Page:  filters.Page,
		Limit: filters.Limit,
	}, http.StatusOK)
}

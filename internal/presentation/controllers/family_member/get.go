package family_member

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetFamilyMembersController handles listing a user's family members
type GetFamilyMembersController struct {
	FindFamilyMembersRepository usecase.FindFamilyMembersRepository
}

// NewGetFamilyMembersController initializes a GetFamilyMembersController
func NewGetFamilyMembersController(
	findFamilyMembersRepository usecase.FindFamilyMembersRepository,
) *GetFamilyMembersController {
	return &GetFamilyMembersController{
		FindFamilyMembersRepository: findFamilyMembersRepository,
	}
}

// Handle processes the HTTP request for listing family members
func (c *GetFamilyMembersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	familyMembers, err := c.FindFamilyMembersRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving family members",
		}, http.StatusInternalServerError)
	}
	if familyMembers == nil {
		familyMembers = []models.FamilyMember{}
	}

	return helpers.CreateResponse(familyMembers, http.StatusOK)
}

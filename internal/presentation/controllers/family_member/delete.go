package family_member

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteFamilyMemberController handles soft-deleting a family member.
// Transactions assigned to the member keep their reference for history.
type DeleteFamilyMemberController struct {
	FindFamilyMemberByIdRepository usecase.FindFamilyMemberByIdRepository
	DeleteFamilyMemberRepository   usecase.DeleteFamilyMemberRepository
}

// NewDeleteFamilyMemberController initializes a DeleteFamilyMemberController
func NewDeleteFamilyMemberController(
	findFamilyMemberByIdRepository usecase.FindFamilyMemberByIdRepository,
	deleteFamilyMemberRepository usecase.DeleteFamilyMemberRepository,
) *DeleteFamilyMemberController {
	return &DeleteFamilyMemberController{
		FindFamilyMemberByIdRepository: findFamilyMemberByIdRepository,
		DeleteFamilyMemberRepository:   deleteFamilyMemberRepository,
	}
}

// Handle processes the HTTP request for deleting a family member
func (c *DeleteFamilyMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	familyMemberId, err := primitive.ObjectIDFromHex(r.Req.PathValue("familyMemberId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid family member ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	existing, err := c.FindFamilyMemberByIdRepository.Find(familyMemberId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving family member",
		}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "family member not found",
		}, http.StatusNotFound)
	}

	if err := c.DeleteFamilyMemberRepository.Delete(familyMemberId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting family member",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}

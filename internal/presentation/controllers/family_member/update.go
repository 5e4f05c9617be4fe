package family_member

import (
	"encoding/json"
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateFamilyMemberController handles editing a family member
type UpdateFamilyMemberController struct {
	Validate                         *validator.Validate
	FindFamilyMemberByIdRepository   usecase.FindFamilyMemberByIdRepository
	FindFamilyMemberByNameRepository usecase.FindFamilyMemberByNameRepository
	UpdateFamilyMemberRepository     usecase.UpdateFamilyMemberRepository
}

// NewUpdateFamilyMemberController initializes an UpdateFamilyMemberController
func NewUpdateFamilyMemberController(
	findFamilyMemberByIdRepository usecase.FindFamilyMemberByIdRepository,
	findFamilyMemberByNameRepository usecase.FindFamilyMemberByNameRepository,
	updateFamilyMemberRepository usecase.UpdateFamilyMemberRepository,
) *UpdateFamilyMemberController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateFamilyMemberController{
		Validate:                         validate,
		FindFamilyMemberByIdRepository:   findFamilyMemberByIdRepository,
		FindFamilyMemberByNameRepository: findFamilyMemberByNameRepository,
		UpdateFamilyMemberRepository:     updateFamilyMemberRepository,
	}
}

// UpdateFamilyMemberControllerBody defines the expected body for updating a family member
type UpdateFamilyMemberControllerBody struct {
	Name         string `json:"name" validate:"required,min=1,max=50"`
	Relationship string `json:"relationship" validate:"omitempty,max=30"`
	Color        string `json:"color" validate:"omitempty,hexcolor"`
	Icon         string `json:"icon" validate:"omitempty,max=30"`
}

// Handle processes the HTTP request for updating a family member
func (c *UpdateFamilyMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	familyMemberId, err := primitive.ObjectIDFromHex(r.Req.PathValue("familyMemberId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid family member ID format",
		}, http.StatusBadRequest)
	}

	var body UpdateFamilyMemberControllerBody
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

	if body.Name != existing.Name {
		sameName, err := c.FindFamilyMemberByNameRepository.FindByName(body.Name, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when checking family member name",
			}, http.StatusInternalServerError)
		}
		if sameName != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "a family member with this name already exists",
			}, http.StatusConflict)
		}
	}

	existing.Name = body.Name
	existing.Relationship = body.Relationship
	existing.Color = body.Color
	existing.Icon = body.Icon

	updated, err := c.UpdateFamilyMemberRepository.Update(familyMemberId, existing)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating family member",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}

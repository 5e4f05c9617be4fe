package family_member

import (
	"encoding/json"
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"github.com/ailefin/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFamilyMemberController handles creating family members
type CreateFamilyMemberController struct {
	Validate                         *validator.Validate
	CreateFamilyMemberRepository     usecase.CreateFamilyMemberRepository
	FindFamilyMemberByNameRepository usecase.FindFamilyMemberByNameRepository
}

// NewCreateFamilyMemberController initializes a CreateFamilyMemberController
func NewCreateFamilyMemberController(
	createFamilyMemberRepository usecase.CreateFamilyMemberRepository,
	findFamilyMemberByNameRepository usecase.FindFamilyMemberByNameRepository,
) *CreateFamilyMemberController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateFamilyMemberController{
		Validate:                         validate,
		CreateFamilyMemberRepository:     createFamilyMemberRepository,
		FindFamilyMemberByNameRepository: findFamilyMemberByNameRepository,
	}
}

// CreateFamilyMemberControllerBody defines the expected body for creating a family member
type CreateFamilyMemberControllerBody struct {
	Name         string `json:"name" validate:"required,min=1,max=50"`
	Relationship string `json:"relationship" validate:"omitempty,max=30"`
	Color        string `json:"color" validate:"omitempty,hexcolor"`
	Icon         string `json:"icon" validate:"omitempty,max=30"`
}

// Handle processes the HTTP request for creating a family member
func (c *CreateFamilyMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateFamilyMemberControllerBody
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

	existing, err := c.FindFamilyMemberByNameRepository.FindByName(body.Name, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when checking family member name",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a family member with this name already exists",
		}, http.StatusConflict)
	}

	familyMember, err := c.CreateFamilyMemberRepository.Create(&models.FamilyMember{
		UserId:       userId,
		Name:         body.Name,
		Relationship: body.Relationship,
		Color:        body.Color,
		Icon:         body.Icon,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating family member",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(familyMember, http.StatusCreated)
}

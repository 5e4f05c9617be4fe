package family_member

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ailefin/finance-backend/internal/domain/models"
	presentationProtocols "github.com/ailefin/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCreateFamilyMember struct {
	created []*models.FamilyMember
}

func (m *mockCreateFamilyMember) Create(familyMember *models.FamilyMember) (*models.FamilyMember, error) {
	familyMember.Id = primitive.NewObjectID()
	m.created = append(m.created, familyMember)
	return familyMember, nil
}

type mockFindFamilyMemberByName struct {
	existing *models.FamilyMember
}

func (m *mockFindFamilyMemberByName) FindByName(_ string, _ primitive.ObjectID) (*models.FamilyMember, error) {
	return m.existing, nil
}

func createMemberRequest(t *testing.T, userId primitive.ObjectID, body map[string]any) presentationProtocols.HttpRequest {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/family-member", bytes.NewReader(raw))
	req.Header.Set("UserId", userId.Hex())

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestCreateFamilyMember(t *testing.T) {
	userId := primitive.NewObjectID()

	t.Run("creates a member with a unique name", func(t *testing.T) {
		creates := &mockCreateFamilyMember{}
		controller := NewCreateFamilyMemberController(creates, &mockFindFamilyMemberByName{})

		response := controller.Handle(createMemberRequest(t, userId, map[string]any{
			"name":         "Deniz",
			"relationship": "child",
		}))

		if response.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusCreated)
		}
		if len(creates.created) != 1 || creates.created[0].Name != "Deniz" {
			t.Fatalf("created = %+v, want one member named Deniz", creates.created)
		}
	})

	t.Run("rejects a duplicate name with 409", func(t *testing.T) {
		creates := &mockCreateFamilyMember{}
		controller := NewCreateFamilyMemberController(creates, &mockFindFamilyMemberByName{
			existing: &models.FamilyMember{Id: primitive.NewObjectID(), Name: "Deniz"},
		})

		response := controller.Handle(createMemberRequest(t, userId, map[string]any{
			"name": "Deniz",
		}))

		if response.StatusCode != http.StatusConflict {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusConflict)
		}
		if len(creates.created) != 0 {
			t.Error("nothing may be created on a duplicate name")
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		controller := NewCreateFamilyMemberController(&mockCreateFamilyMember{}, &mockFindFamilyMemberByName{})

		response := controller.Handle(createMemberRequest(t, userId, map[string]any{
			"relationship": "child",
		}))

		if response.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusUnprocessableEntity)
		}
	})
}

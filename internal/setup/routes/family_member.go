package routes

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/setup/adapters"
	"github.com/ailefin/finance-backend/internal/setup/factory"
	"github.com/ailefin/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// FamilyMemberRoutes registers HTTP routes for family member operations
func FamilyMemberRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new family member
	server.Handle("POST /family-member", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateFamilyMemberController(db)),
	))

	// List family members
	server.Handle("GET /family-member", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetFamilyMembersController(db)),
		),
	))

	// Update a family member
	server.Handle("PUT /family-member/{familyMemberId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateFamilyMemberController(db)),
	))

	// Soft-delete a family member
	server.Handle("DELETE /family-member/{familyMemberId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteFamilyMemberController(db)),
	))
}

package routes

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/user_repository"
	"github.com/ailefin/finance-backend/internal/setup/adapters"
	"github.com/ailefin/finance-backend/internal/setup/factory"
	"github.com/ailefin/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// SuperuserRoutes registers the administration panel routes
func SuperuserRoutes(server *http.ServeMux, db *mongo.Database) {
	findUserRepo := user_repository.NewFindUserByIdRepository(db)

	// List users with stats
	server.Handle("GET /superuser/users", middlewares.VerifyAccessToken(
		middlewares.RequireSuperuser(
			adapters.AdaptRoute(factory.MakeGetUsersController(db)),
			findUserRepo,
		),
	))

	// Get one user's account detail
	server.Handle("GET /superuser/users/{userId}", middlewares.VerifyAccessToken(
		middlewares.RequireSuperuser(
			adapters.AdaptRoute(factory.MakeGetUserByIdController(db)),
			findUserRepo,
		),
	))
}

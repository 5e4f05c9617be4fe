package routes

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/setup/adapters"
	"github.com/ailefin/finance-backend/internal/setup/factory"
	"github.com/ailefin/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardRoutes registers the monthly overview route
func DashboardRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	server.Handle("GET /dashboard", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetDashboardController(db, redisUrl)),
	))
}

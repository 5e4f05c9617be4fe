package config

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	apiServer := http.NewServeMux()
	routes.CardRoutes(apiServer, db)
	routes.TransactionRoutes(apiServer, db, redisUrl)
	routes.FamilyMemberRoutes(apiServer, db)
	routes.DashboardRoutes(apiServer, db, redisUrl)
	routes.SuperuserRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}

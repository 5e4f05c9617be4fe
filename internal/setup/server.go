package setup

import (
	"net/http"
	"os"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/ailefin/finance-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB_NAME"))
	redisUrl := os.Getenv("REDIS_URL")

	config.SetupRoutes(mux, db, redisUrl)

	return mux
}

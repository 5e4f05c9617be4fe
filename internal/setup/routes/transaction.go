package routes

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/setup/adapters"
	"github.com/ailefin/finance-backend/internal/setup/factory"
	"github.com/ailefin/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionRoutes registers HTTP routes for transaction operations
func TransactionRoutes(server *http.ServeMux, db *mongo.Database, redisUrl string) {
	// Create a new transaction
	server.Handle("POST /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateTransactionController(db)),
	))

	// List transactions with filters and pagination
	server.Handle("GET /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetTransactionsController(db)),
	))

	// Export a month of transactions as XLSX
	server.Handle("GET /transaction/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportTransactionsController(db, redisUrl)),
	))

	// Get a transaction by ID
	server.Handle("GET /transaction/{transactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetTransactionByIdController(db)),
	))

	// Update a transaction
	server.Handle("PUT /transaction/{transactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateTransactionController(db)),
	))

	// Delete a transaction
	server.Handle("DELETE /transaction/{transactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteTransactionController(db)),
	))
}

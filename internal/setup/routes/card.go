package routes

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/setup/adapters"
	"github.com/ailefin/finance-backend/internal/setup/factory"
	"github.com/ailefin/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// CardRoutes registers HTTP routes for card operations
func CardRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new card
	server.Handle("POST /card", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCardController(db)),
	))

	// Get all cards with payment totals
	server.Handle("GET /card", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetCardsController(db)),
		),
	))

	// Get cards with an open minimum payment
	server.Handle("GET /card/due-payments", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetDuePaymentsController(db)),
	))

	// Get a card by ID
	server.Handle("GET /card/{cardId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCardByIdController(db)),
	))

	// Update a card's descriptive fields
	server.Handle("PUT /card/{cardId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateCardController(db)),
	))

	// Soft-delete a card
	server.Handle("DELETE /card/{cardId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteCardController(db)),
	))

	// Record a payment against a card
	server.Handle("POST /card/{cardId}/payments", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCardPaymentController(db)),
	))

	// Get a card's payment history
	server.Handle("GET /card/{cardId}/payments", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCardPaymentsController(db)),
	))

	// Get a card's transaction history
	server.Handle("GET /card/{cardId}/transactions", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCardTransactionsController(db)),
	))
}

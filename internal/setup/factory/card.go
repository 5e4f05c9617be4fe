package factory

import (
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_payment_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/ailefin/finance-backend/internal/presentation/controllers/card"
	"github.com/ailefin/finance-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateCardController creates the controller for creating cards
func MakeCreateCardController(db *mongo.Database) *controllers.CreateCardController {
	createRepo := card_repository.NewCreateCardRepository(db)
	return controllers.NewCreateCardController(createRepo)
}

// MakeGetCardsController creates the controller for retrieving cards
func MakeGetCardsController(db *mongo.Database) *controllers.GetCardsController {
	findRepo := card_repository.NewFindCardsRepository(db)
	paymentsRepo := card_payment_repository.NewFindCardPaymentsByCardIdRepository(db)
	return controllers.NewGetCardsController(findRepo, paymentsRepo, utils.NewSystemClock())
}

// MakeGetCardByIdController creates the controller for retrieving a card by ID
func MakeGetCardByIdController(db *mongo.Database) *controllers.GetCardByIdController {
	findByIdRepo := card_repository.NewFindCardByIdRepository(db)
	return controllers.NewGetCardByIdController(findByIdRepo)
}

// MakeUpdateCardController creates the controller for updating cards
func MakeUpdateCardController(db *mongo.Database) *controllers.UpdateCardController {
	updateRepo := card_repository.NewUpdateCardRepository(db)
	findByIdRepo := card_repository.NewFindCardByIdRepository(db)
	return controllers.NewUpdateCardController(updateRepo, findByIdRepo)
}

// MakeDeleteCardController creates the controller for deleting cards
func MakeDeleteCardController(db *mongo.Database) *controllers.DeleteCardController {
	deleteRepo := card_repository.NewDeleteCardRepository(db)
	findByIdRepo := card_repository.NewFindCardByIdRepository(db)
	return controllers.NewDeleteCardController(deleteRepo, findByIdRepo)
}

// MakeGetCardTransactionsController creates the controller for a card's transaction history
func MakeGetCardTransactionsController(db *mongo.Database) *controllers.GetCardTransactionsController {
	findByIdRepo := card_repository.NewFindCardByIdRepository(db)
	findTransactionsRepo := transaction_repository.NewFindTransactionsByCardIdRepository(db)
	return controllers.NewGetCardTransactionsController(findByIdRepo, findTransactionsRepo)
}

// MakeGetDuePaymentsController creates the controller for listing due payments
func MakeGetDuePaymentsController(db *mongo.Database) *controllers.GetDuePaymentsController {
	findRepo := card_repository.NewFindCardsRepository(db)
	return controllers.NewGetDuePaymentsController(findRepo, utils.NewSystemClock())
}

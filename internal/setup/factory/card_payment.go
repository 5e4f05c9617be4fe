package factory

import (
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_payment_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/ailefin/finance-backend/internal/presentation/controllers/card_payment"
	"github.com/ailefin/finance-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateCardPaymentController creates the controller for recording card payments
func MakeCreateCardPaymentController(db *mongo.Database) *controllers.CreateCardPaymentController {
	findCardRepo := card_repository.NewFindCardByIdRepository(db)
	createPaymentRepo := card_payment_repository.NewCreateCardPaymentRepository(db)
	updateCardRepo := card_repository.NewUpdateCardRepository(db)
	createTransactionRepo := transaction_repository.NewCreateTransactionRepository(db)
	return controllers.NewCreateCardPaymentController(
		findCardRepo,
		createPaymentRepo,
		updateCardRepo,
		createTransactionRepo,
		utils.NewSystemClock(),
	)
}

// MakeGetCardPaymentsController creates the controller for a card's payment history
func MakeGetCardPaymentsController(db *mongo.Database) *controllers.GetCardPaymentsController {
	findCardRepo := card_repository.NewFindCardByIdRepository(db)
	findPaymentsRepo := card_payment_repository.NewFindCardPaymentsByCardIdRepository(db)
	return controllers.NewGetCardPaymentsController(findCardRepo, findPaymentsRepo)
}

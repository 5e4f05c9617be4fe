package factory

import (
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/ailefin/finance-backend/internal/presentation/controllers/transaction"
	"github.com/ailefin/finance-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateTransactionController creates the controller for creating transactions
func MakeCreateTransactionController(db *mongo.Database) *controllers.CreateTransactionController {
	createRepo := transaction_repository.NewCreateTransactionRepository(db)
	findCardRepo := card_repository.NewFindCardByIdRepository(db)
	updateCardRepo := card_repository.NewUpdateCardRepository(db)
	return controllers.NewCreateTransactionController(createRepo, findCardRepo, updateCardRepo, utils.NewSystemClock())
}

// MakeGetTransactionsController creates the controller for listing transactions
func MakeGetTransactionsController(db *mongo.Database) *controllers.GetTransactionsController {
	findRepo := transaction_repository.NewFindTransactionsRepository(db)
	return controllers.NewGetTransactionsController(findRepo, utils.NewSystemClock())
}

// MakeGetTransactionByIdController creates the controller for retrieving a transaction
func MakeGetTransactionByIdController(db *mongo.Database) *controllers.GetTransactionByIdController {
	findByIdRepo := transaction_repository.NewFindTransactionByIdRepository(db)
	return controllers.NewGetTransactionByIdController(findByIdRepo)
}

// MakeUpdateTransactionController creates the controller for updating transactions
func MakeUpdateTransactionController(db *mongo.Database) *controllers.UpdateTransactionController {
	findByIdRepo := transaction_repository.NewFindTransactionByIdRepository(db)
	updateRepo := transaction_repository.NewUpdateTransactionRepository(db)
	return controllers.NewUpdateTransactionController(findByIdRepo, updateRepo)
}

// MakeDeleteTransactionController creates the controller for deleting transactions
func MakeDeleteTransactionController(db *mongo.Database) *controllers.DeleteTransactionController {
	findByIdRepo := transaction_repository.NewFindTransactionByIdRepository(db)
	deleteRepo := transaction_repository.NewDeleteTransactionRepository(db)
	return controllers.NewDeleteTransactionController(findByIdRepo, deleteRepo)
}

// MakeExportTransactionsController creates the controller for the XLSX export
func MakeExportTransactionsController(db *mongo.Database, redisUrl string) *controllers.ExportTransactionsController {
	findRepo := transaction_repository.NewFindTransactionsRepository(db)
	cacheRepo := redis_repository.NewExportCacheRepository(redisUrl)
	return controllers.NewExportTransactionsController(findRepo, cacheRepo, utils.NewSystemClock())
}

package factory

import (
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/family_member_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/ailefin/finance-backend/internal/presentation/controllers/dashboard"
	"github.com/ailefin/finance-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeGetDashboardController creates the controller for the monthly overview
func MakeGetDashboardController(db *mongo.Database, redisUrl string) *controllers.GetDashboardController {
	findCardsRepo := card_repository.NewFindCardsRepository(db)
	updateCardRepo := card_repository.NewUpdateCardRepository(db)
	sweepGateRepo := redis_repository.NewSweepGateRepository(redisUrl)
	findTransactionsRepo := transaction_repository.NewFindTransactionsRepository(db)
	findFamilyMembersRepo := family_member_repository.NewFindFamilyMembersRepository(db)
	return controllers.NewGetDashboardController(
		findCardsRepo,
		updateCardRepo,
		sweepGateRepo,
		findTransactionsRepo,
		findFamilyMembersRepo,
		utils.NewSystemClock(),
	)
}

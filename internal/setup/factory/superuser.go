package factory

import (
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/card_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/family_member_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/user_repository"
	controllers "github.com/ailefin/finance-backend/internal/presentation/controllers/superuser"
	"github.com/ailefin/finance-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeGetUsersController creates the controller for the superuser user listing
func MakeGetUsersController(db *mongo.Database) *controllers.GetUsersController {
	findUsersRepo := user_repository.NewFindUsersRepository(db)
	statsRepo := user_repository.NewUserStatsRepository(db)
	return controllers.NewGetUsersController(findUsersRepo, statsRepo)
}

// MakeGetUserByIdController creates the controller for the superuser user detail
func MakeGetUserByIdController(db *mongo.Database) *controllers.GetUserByIdController {
	findUserRepo := user_repository.NewFindUserByIdRepository(db)
	statsRepo := user_repository.NewUserStatsRepository(db)
	findCardsRepo := card_repository.NewFindCardsRepository(db)
	findFamilyMembersRepo := family_member_repository.NewFindFamilyMembersRepository(db)
	findTransactionsRepo := transaction_repository.NewFindTransactionsRepository(db)
	return controllers.NewGetUserByIdController(
		findUserRepo,
		statsRepo,
		findCardsRepo,
		findFamilyMembersRepo,
		findTransactionsRepo,
		utils.NewSystemClock(),
	)
}

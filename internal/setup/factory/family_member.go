package factory

import (
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/repositories/family_member_repository"
	controllers "github.com/ailefin/finance-backend/internal/presentation/controllers/family_member"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateFamilyMemberController creates the controller for creating family members
func MakeCreateFamilyMemberController(db *mongo.Database) *controllers.CreateFamilyMemberController {
	createRepo := family_member_repository.NewCreateFamilyMemberRepository(db)
	findByNameRepo := family_member_repository.NewFindFamilyMemberByNameRepository(db)
	return controllers.NewCreateFamilyMemberController(createRepo, findByNameRepo)
}

// MakeGetFamilyMembersController creates the controller for listing family members
func MakeGetFamilyMembersController(db *mongo.Database) *controllers.GetFamilyMembersController {
	findRepo := family_member_repository.NewFindFamilyMembersRepository(db)
	return controllers.NewGetFamilyMembersController(findRepo)
}

// MakeUpdateFamilyMemberController creates the controller for updating family members
func MakeUpdateFamilyMemberController(db *mongo.Database) *controllers.UpdateFamilyMemberController {
	findByIdRepo := family_member_repository.NewFindFamilyMemberByIdRepository(db)
	findByNameRepo := family_member_repository.NewFindFamilyMemberByNameRepository(db)
	updateRepo := family_member_repository.NewUpdateFamilyMemberRepository(db)
	return controllers.NewUpdateFamilyMemberController(findByIdRepo, findByNameRepo, updateRepo)
}

// MakeDeleteFamilyMemberController creates the controller for deleting family members
func MakeDeleteFamilyMemberController(db *mongo.Database) *controllers.DeleteFamilyMemberController {
	findByIdRepo := family_member_repository.NewFindFamilyMemberByIdRepository(db)
	deleteRepo := family_member_repository.NewDeleteFamilyMemberRepository(db)
	return controllers.NewDeleteFamilyMemberController(findByIdRepo, deleteRepo)
}

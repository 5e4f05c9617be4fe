package family_member_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateFamilyMemberRepository struct {
	Db *mongo.Database
}

func NewCreateFamilyMemberRepository(db *mongo.Database) *CreateFamilyMemberRepository {
	return &CreateFamilyMemberRepository{Db: db}
}

func (r *CreateFamilyMemberRepository) Create(familyMember *models.FamilyMember) (*models.FamilyMember, error) {
	collection := r.Db.Collection("family_members")

	now := time.Now().UTC()
	familyMember.Id = primitive.NewObjectID()
	familyMember.IsActive = true
	familyMember.CreatedAt = now
	familyMember.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, familyMember)
	if err != nil {
		return nil, err
	}

	return familyMember, nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FamilyMember struct {
	Id           primitive.ObjectID `json:"id" bson:"_id"`
	UserId       primitive.ObjectID `json:"userId" bson:"user_id"`
	Name         string             `json:"name" bson:"name"`
	Relationship string             `json:"relationship" bson:"relationship"`
	Color        string             `json:"color" bson:"color"`
	Icon         string             `json:"icon" bson:"icon"`
	IsActive     bool               `json:"isActive" bson:"is_active"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
}

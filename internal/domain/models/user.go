package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserRoleDefault   = "USER"
	UserRoleSuperuser = "SUPERUSER"
)

type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Role      string             `json:"role" bson:"role"` // USER | SUPERUSER
	LastLogin *time.Time         `json:"lastLogin,omitempty" bson:"last_login"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

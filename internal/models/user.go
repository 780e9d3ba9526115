package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username          string             `json:"username" bson:"username" validate:"required"`
	Email             string             `json:"email" bson:"email"`
	ProfilePictureURL string             `json:"profilePictureUrl" bson:"profile_picture_url"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updated_at"`
}

// UserProfile is the projection of a user exposed alongside their reviews.
type UserProfile struct {
	Username          string `json:"username" bson:"username"`
	ProfilePictureURL string `json:"profilePictureUrl" bson:"profile_picture_url"`
}

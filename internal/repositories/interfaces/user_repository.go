package interfaces

import (
	"context"

	"restrohub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserProfile, error)
}

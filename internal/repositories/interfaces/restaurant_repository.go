package interfaces

import (
	"context"

	"restrohub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, restaurant *models.Restaurant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	FindByName(ctx context.Context, name string) (*models.Restaurant, error)
	FindByCity(ctx context.Context, city string) (*models.Restaurant, error)
	FindAll(ctx context.Context) ([]*models.Restaurant, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Restaurant, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error

	// Filtering
	FindByCuisine(ctx context.Context, cuisine models.Cuisine) ([]*models.Restaurant, error)
	FindByMinRating(ctx context.Context, minRating float64) ([]*models.Restaurant, error)

	// Embedded list mutations, all single atomic updates
	PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Restaurant, error)
	SetAverageRating(ctx context.Context, id primitive.ObjectID, name string, reviewCount int, average float64) error
	PushDish(ctx context.Context, id primitive.ObjectID, dish models.Dish) (*models.Restaurant, error)
	PullDishByName(ctx context.Context, id primitive.ObjectID, dishName string) (*models.Restaurant, error)
}

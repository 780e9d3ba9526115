package services

import (
	"context"

	"restrohub/internal/models"
	"restrohub/internal/repositories/interfaces"
	"restrohub/internal/utils"
	"restrohub/internal/validators"
	"restrohub/pkg/logger"
)

type MenuService interface {
	AddDish(ctx context.Context, restaurantID string, dish models.Dish) (*models.Restaurant, error)
	RemoveDish(ctx context.Context, restaurantID string, dishName string) (*models.Restaurant, error)
}

type menuService struct {
	restaurantRepo interfaces.RestaurantRepository
	logger         *logger.Logger
}

func NewMenuService(restaurantRepo interfaces.RestaurantRepository, logger *logger.Logger) MenuService {
	return &menuService{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

func (s *menuService) AddDish(ctx context.Context, restaurantID string, dish models.Dish) (*models.Restaurant, error) {
	id, err := parseRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	if errs := validators.ValidateDish(&dish); errs.HasErrors() {
		return nil, utils.NewValidationError(errs[0].Field, errs[0].Message)
	}

	restaurant, err := s.restaurantRepo.PushDish(ctx, id, dish)
	if err != nil {
		return nil, err
	}

	s.logger.WithRestaurantID(id).WithField("dish", dish.Name).Info("Dish added to menu")

	return restaurant, nil
}

// RemoveDish drops every menu entry with the given name. Removing a name
// that is not on the menu returns the restaurant unchanged.
func (s *menuService) RemoveDish(ctx context.Context, restaurantID string, dishName string) (*models.Restaurant, error) {
	id, err := parseRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	if dishName == "" {
		return nil, utils.NewValidationError("dishName", "is required")
	}

	restaurant, err := s.restaurantRepo.PullDishByName(ctx, id, dishName)
	if err != nil {
		return nil, err
	}

	s.logger.WithRestaurantID(id).WithField("dish", dishName).Info("Dish removed from menu")

	return restaurant, nil
}

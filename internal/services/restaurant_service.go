package services

import (
	"context"

	"restrohub/internal/models"
	"restrohub/internal/repositories/interfaces"
	"restrohub/internal/utils"
	"restrohub/internal/validators"
	"restrohub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantService interface {
	Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
	SearchByCity(ctx context.Context, city string) (*models.Restaurant, error)
	GetByName(ctx context.Context, name string) (*models.Restaurant, error)
	List(ctx context.Context) ([]*models.Restaurant, error)
	ListByCuisine(ctx context.Context, cuisine string) ([]*models.Restaurant, error)
	ListByMinRating(ctx context.Context, minRating float64) ([]*models.Restaurant, error)
	Update(ctx context.Context, restaurantID string, updates map[string]interface{}) (*models.Restaurant, error)
	Delete(ctx context.Context, restaurantID string) ([]*models.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo interfaces.RestaurantRepository
	logger         *logger.Logger
}

func NewRestaurantService(restaurantRepo interfaces.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

func (s *restaurantService) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	if errs := validators.ValidateRestaurantCreate(restaurant); errs.HasErrors() {
		return nil, utils.NewValidationError(errs[0].Field, errs[0].Message)
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	s.logger.WithRestaurantID(restaurant.ID).WithField("name", restaurant.Name).Info("Restaurant created")

	return restaurant, nil
}

func (s *restaurantService) SearchByCity(ctx context.Context, city string) (*models.Restaurant, error) {
	return s.restaurantRepo.FindByCity(ctx, city)
}

func (s *restaurantService) GetByName(ctx context.Context, name string) (*models.Restaurant, error) {
	return s.restaurantRepo.FindByName(ctx, name)
}

func (s *restaurantService) List(ctx context.Context) ([]*models.Restaurant, error) {
	return s.restaurantRepo.FindAll(ctx)
}

func (s *restaurantService) ListByCuisine(ctx context.Context, cuisine string) ([]*models.Restaurant, error) {
	tag := models.Cuisine(cuisine)
	if !tag.IsValid() {
		return nil, utils.NewValidationError("cuisineType", "'"+cuisine+"' is not a valid cuisine")
	}

	return s.restaurantRepo.FindByCuisine(ctx, tag)
}

func (s *restaurantService) ListByMinRating(ctx context.Context, minRating float64) ([]*models.Restaurant, error) {
	if minRating < utils.MinRating || minRating > utils.MaxRating {
		return nil, utils.NewValidationError("minRating", "must be between 0 and 5")
	}

	return s.restaurantRepo.FindByMinRating(ctx, minRating)
}

func (s *restaurantService) Update(ctx context.Context, restaurantID string, updates map[string]interface{}) (*models.Restaurant, error) {
	id, err := parseRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	mapped, errs := validators.ValidateRestaurantUpdate(updates)
	if errs.HasErrors() {
		return nil, utils.NewValidationError(errs[0].Field, errs[0].Message)
	}

	restaurant, err := s.restaurantRepo.UpdateByID(ctx, id, mapped)
	if err != nil {
		return nil, err
	}

	s.logger.WithRestaurantID(id).Info("Restaurant updated")

	return restaurant, nil
}

// Delete removes the restaurant and returns the remaining list, which is
// what the delete endpoint responds with.
func (s *restaurantService) Delete(ctx context.Context, restaurantID string) ([]*models.Restaurant, error) {
	id, err := parseRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	s.logger.WithRestaurantID(id).Info("Restaurant deleted")

	return s.restaurantRepo.FindAll(ctx)
}

func parseRestaurantID(restaurantID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return primitive.NilObjectID, utils.NewValidationError("restaurantId", "is not a valid id")
	}
	return id, nil
}

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

type ReviewService interface {
	AddReview(ctx context.Context, restaurantID string, review models.Review) (*models.Restaurant, error)
	GetReviews(ctx context.Context, restaurantID string) ([]models.ReviewWithAuthor, error)
}

type reviewService struct {
	restaurantRepo interfaces.RestaurantRepository
	userRepo       interfaces.UserRepository
	logger         *logger.Logger
}

func NewReviewService(
	restaurantRepo interfaces.RestaurantRepository,
	userRepo interfaces.UserRepository,
	logger *logger.Logger,
) ReviewService {
	return &reviewService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// AddReview appends the review atomically, then recomputes the average
// over the full post-append list. The average write carries a review-count
// version check, so when two appends race, each append survives and the
// recompute that saw the longer list is the one that sticks.
func (s *reviewService) AddReview(ctx context.Context, restaurantID string, review models.Review) (*models.Restaurant, error) {
	id, err := parseRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	if errs := validators.ValidateReview(&review); errs.HasErrors() {
		return nil, utils.NewValidationError(errs[0].Field, errs[0].Message)
	}

	restaurant, err := s.restaurantRepo.PushReview(ctx, id, review)
	if err != nil {
		return nil, err
	}

	average := models.AverageRating(restaurant.Reviews)
	if err := s.restaurantRepo.SetAverageRating(ctx, id, restaurant.Name, len(restaurant.Reviews), average); err != nil {
		return nil, err
	}

	s.logger.WithRestaurantID(id).WithFields(map[string]interface{}{
		"rating":         review.Rating,
		"review_count":   len(restaurant.Reviews),
		"average_rating": average,
	}).Info("Review added")

	return s.restaurantRepo.FindByID(ctx, id)
}

// GetReviews returns the restaurant's reviews joined with their authors'
// public profiles, in stored order. A review whose author no longer
// exists keeps its place with a nil user.
func (s *reviewService) GetReviews(ctx context.Context, restaurantID string) ([]models.ReviewWithAuthor, error) {
	id, err := parseRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.ReviewWithAuthor, 0, len(restaurant.Reviews))
	if len(restaurant.Reviews) == 0 {
		return reviews, nil
	}

	authorIDs := make([]primitive.ObjectID, 0, len(restaurant.Reviews))
	seen := make(map[primitive.ObjectID]bool)
	for _, review := range restaurant.Reviews {
		if review.UserID.IsZero() || seen[review.UserID] {
			continue
		}
		seen[review.UserID] = true
		authorIDs = append(authorIDs, review.UserID)
	}

	authors, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, review := range restaurant.Reviews {
		reviews = append(reviews, models.ReviewWithAuthor{
			ReviewText: review.Text,
			User:       authors[review.UserID],
		})
	}

	return reviews, nil
}

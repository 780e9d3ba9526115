package validators

import (
	"fmt"

	"restrohub/internal/models"
)

type CreateRestaurantRequest struct {
	Restaurant models.Restaurant `json:"restaurant"`
}

type UpdateRestaurantRequest struct {
	UpdatedData map[string]interface{} `json:"updatedData"`
}

type AddDishRequest struct {
	Dish models.Dish `json:"dish"`
}

type AddReviewRequest struct {
	ReviewData models.Review `json:"reviewData"`
}

func ValidateRestaurantCreate(restaurant *models.Restaurant) ValidationErrors {
	return ValidateStruct(restaurant)
}

// updatableFields maps the wire names accepted by the update endpoint to
// their stored field names. Menu and reviews have dedicated endpoints, and
// averageRating is derived from reviews, so none of them are updatable here.
var updatableFields = map[string]string{
	"name":    "name",
	"cuisine": "cuisine",
	"address": "address",
	"city":    "city",
	"rating":  "rating",
}

// ValidateRestaurantUpdate checks a partial update and rewrites its keys
// to stored field names. Unknown fields, out-of-range ratings and unknown
// cuisine tags are rejected before anything reaches the store.
func ValidateRestaurantUpdate(updates map[string]interface{}) (map[string]interface{}, ValidationErrors) {
	var errors ValidationErrors
	mapped := make(map[string]interface{}, len(updates))

	for field, value := range updates {
		stored, ok := updatableFields[field]
		if !ok {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: "is not an updatable field",
			})
			continue
		}

		switch field {
		case "name":
			str, ok := value.(string)
			if !ok || str == "" {
				errors = append(errors, ValidationError{Field: field, Message: "must be a non-empty string"})
				continue
			}
		case "rating":
			num, ok := value.(float64)
			if !ok || num < 0 || num > 5 {
				errors = append(errors, ValidationError{Field: field, Message: "must be a number between 0 and 5"})
				continue
			}
		case "cuisine":
			tags, ok := value.([]interface{})
			if !ok {
				errors = append(errors, ValidationError{Field: field, Message: "must be a list of cuisine tags"})
				continue
			}
			valid := true
			for _, tag := range tags {
				str, ok := tag.(string)
				if !ok || !models.Cuisine(str).IsValid() {
					errors = append(errors, ValidationError{
						Field:   field,
						Message: fmt.Sprintf("'%v' is not a valid cuisine", tag),
					})
					valid = false
					break
				}
			}
			if !valid {
				continue
			}
		}

		mapped[stored] = value
	}

	if len(mapped) == 0 && !errors.HasErrors() {
		errors = append(errors, ValidationError{Field: "updatedData", Message: "no updatable fields given"})
	}

	return mapped, errors
}

func ValidateDish(dish *models.Dish) ValidationErrors {
	return ValidateStruct(dish)
}

func ValidateReview(review *models.Review) ValidationErrors {
	errors := ValidateStruct(review)

	if review.UserID.IsZero() {
		errors = append(errors, ValidationError{Field: "userId", Message: "is required"})
	}

	return errors
}

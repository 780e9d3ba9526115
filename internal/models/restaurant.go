package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cuisine string

const (
	CuisineIndian   Cuisine = "Indian"
	CuisineItalian  Cuisine = "Italian"
	CuisineChinese  Cuisine = "Chinese"
	CuisineMexican  Cuisine = "Mexican"
	CuisineThai     Cuisine = "Thai"
	CuisineJapanese Cuisine = "Japanese"
	CuisineFrench   Cuisine = "French"
)

var AllCuisines = []Cuisine{
	CuisineIndian,
	CuisineItalian,
	CuisineChinese,
	CuisineMexican,
	CuisineThai,
	CuisineJapanese,
	CuisineFrench,
}

func (c Cuisine) IsValid() bool {
	for _, valid := range AllCuisines {
		if c == valid {
			return true
		}
	}
	return false
}

type Restaurant struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required"`
	Cuisine       []Cuisine          `json:"cuisine" bson:"cuisine" validate:"dive,cuisine"`
	Address       string             `json:"address" bson:"address"`
	City          string             `json:"city" bson:"city"`
	Rating        float64            `json:"rating" bson:"rating" validate:"min=0,max=5"`
	AverageRating float64            `json:"averageRating" bson:"average_rating"`
	Menu          []Dish             `json:"menu" bson:"menu" validate:"dive"`
	Reviews       []Review           `json:"reviews" bson:"reviews" validate:"dive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}

type Dish struct {
	Name        string  `json:"name" bson:"name" validate:"required"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	IsVeg       bool    `json:"isVeg" bson:"is_veg"`
}

type Review struct {
	Rating float64            `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Text   string             `json:"text" bson:"text"`
	UserID primitive.ObjectID `json:"userId" bson:"user_id"`
}

// ReviewWithAuthor is the read projection returned when listing a
// restaurant's reviews. User is nil when the review's author reference
// no longer resolves.
type ReviewWithAuthor struct {
	ReviewText string       `json:"reviewText"`
	User       *UserProfile `json:"user"`
}

// AverageRating returns the arithmetic mean of the given review ratings,
// or 0 when there are none.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0.0
	for _, review := range reviews {
		total += review.Rating
	}

	return total / float64(len(reviews))
}

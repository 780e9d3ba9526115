package utils

// Collection names
const (
	CollectionRestaurants = "restaurants"
	CollectionUsers       = "users"
)

// Resource names used in not-found errors
const (
	ResourceRestaurant = "Restaurant"
	ResourceUser       = "User"
)

// Response messages
const (
	MsgRestaurantCreated = "Created Restaurant Successfully"
	MsgRestaurantFound   = "Restaurant Found"
	MsgRestaurantsFound  = "Restaurants Found"
	MsgCuisineFound      = "Restaurants with Cuisine Found"
	MsgRestaurantUpdated = "Restaurant Updated"
	MsgRestaurantDeleted = "Restaurant Deleted"
	MsgDishAdded         = "Dish Added"
	MsgDishRemoved       = "Deleted Dish from menu"
	MsgReviewAdded       = "Review Added"
	MsgReviewsFound      = "Reviews Found"

	MsgNoRestaurants        = "No Restaurants Found"
	MsgNoCuisineRestaurants = "No Restaurants Found for cuisine"
	MsgRestaurantNotFound   = "Restaurant Not Found"
)

// Rating bounds
const (
	MinRating = 0.0
	MaxRating = 5.0
)

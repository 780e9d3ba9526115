package routes

import (
	"restrohub/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRestaurantRoutes registers the restaurant surface. The GET tree can
// carry only one wildcard name per position, so ":name" doubles as the
// restaurant id on the reviews listing route.
func SetupRestaurantRoutes(
	router *gin.Engine,
	restaurantHandler *handlers.RestaurantHandler,
	menuHandler *handlers.MenuHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	restaurants := router.Group("/restaurants")
	{
		restaurants.POST("", restaurantHandler.CreateRestaurant)
		restaurants.GET("", restaurantHandler.GetAllRestaurants)
		restaurants.GET("/search", restaurantHandler.SearchRestaurants)
		restaurants.GET("/cuisine/:cuisineType", restaurantHandler.GetRestaurantsByCuisine)
		restaurants.GET("/rating/:minRating", restaurantHandler.GetRestaurantsByMinRating)
		restaurants.GET("/:name", restaurantHandler.GetRestaurantByName)
		restaurants.GET("/:name/reviews", reviewHandler.GetReviews)

		restaurants.POST("/:restaurantId", restaurantHandler.UpdateRestaurant)
		restaurants.DELETE("/:restaurantId", restaurantHandler.DeleteRestaurant)

		restaurants.POST("/:restaurantId/menu", menuHandler.AddDish)
		restaurants.DELETE("/:restaurantId/menu/:dishName", menuHandler.RemoveDish)

		restaurants.POST("/:restaurantId/reviews", reviewHandler.AddReview)
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"restrohub/internal/services"
	"restrohub/internal/utils"
	"restrohub/internal/validators"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService services.RestaurantService
}

func NewRestaurantHandler(restaurantService services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// CreateRestaurant handles POST /restaurants
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var request validators.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, utils.NewValidationError("", "invalid request: "+err.Error()))
		return
	}

	restaurant, err := h.restaurantService.Create(c.Request.Context(), &request.Restaurant)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, utils.MsgRestaurantCreated, gin.H{"restaurant": restaurant})
}

// SearchRestaurants handles GET /restaurants/search?location=
func (h *RestaurantHandler) SearchRestaurants(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, utils.NewValidationError("location", "is required"))
		return
	}

	restaurant, err := h.restaurantService.SearchByCity(c.Request.Context(), location)
	if err != nil {
		if utils.IsNotFound(err) {
			utils.NotFoundMessage(c, utils.MsgNoRestaurants)
			return
		}
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgRestaurantFound, gin.H{"restaurants": restaurant})
}

// GetRestaurantByName handles GET /restaurants/:name
func (h *RestaurantHandler) GetRestaurantByName(c *gin.Context) {
	name := c.Param("name")

	restaurant, err := h.restaurantService.GetByName(c.Request.Context(), name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgRestaurantFound, gin.H{"restaurant": restaurant})
}

// GetAllRestaurants handles GET /restaurants
func (h *RestaurantHandler) GetAllRestaurants(c *gin.Context) {
	restaurants, err := h.restaurantService.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(restaurants) == 0 {
		utils.NotFoundMessage(c, utils.MsgNoRestaurants)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgRestaurantsFound, gin.H{"restaurants": restaurants})
}

// GetRestaurantsByCuisine handles GET /restaurants/cuisine/:cuisineType
func (h *RestaurantHandler) GetRestaurantsByCuisine(c *gin.Context) {
	cuisineType := c.Param("cuisineType")

	restaurants, err := h.restaurantService.ListByCuisine(c.Request.Context(), cuisineType)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(restaurants) == 0 {
		utils.NotFoundMessage(c, utils.MsgNoCuisineRestaurants)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgCuisineFound, gin.H{"restaurants": restaurants})
}

// GetRestaurantsByMinRating handles GET /restaurants/rating/:minRating
func (h *RestaurantHandler) GetRestaurantsByMinRating(c *gin.Context) {
	minRating, err := strconv.ParseFloat(c.Param("minRating"), 64)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("minRating", "must be a number"))
		return
	}

	restaurants, err := h.restaurantService.ListByMinRating(c.Request.Context(), minRating)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(restaurants) == 0 {
		utils.NotFoundMessage(c, utils.MsgNoRestaurants)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgRestaurantsFound, gin.H{"restaurants": restaurants})
}

// UpdateRestaurant handles POST /restaurants/:restaurantId
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	var request validators.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, utils.NewValidationError("", "invalid request: "+err.Error()))
		return
	}

	restaurant, err := h.restaurantService.Update(c.Request.Context(), c.Param("restaurantId"), request.UpdatedData)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgRestaurantUpdated, gin.H{"restaurant": restaurant})
}

// DeleteRestaurant handles DELETE /restaurants/:restaurantId and responds
// with the restaurants remaining after the deletion.
func (h *RestaurantHandler) DeleteRestaurant(c *gin.Context) {
	remaining, err := h.restaurantService.Delete(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgRestaurantDeleted, gin.H{"restaurant": remaining})
}

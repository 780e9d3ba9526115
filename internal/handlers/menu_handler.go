package handlers

import (
	"net/http"

	"restrohub/internal/services"
	"restrohub/internal/utils"
	"restrohub/internal/validators"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// AddDish handles POST /restaurants/:restaurantId/menu
func (h *MenuHandler) AddDish(c *gin.Context) {
	var request validators.AddDishRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, utils.NewValidationError("", "invalid request: "+err.Error()))
		return
	}

	restaurant, err := h.menuService.AddDish(c.Request.Context(), c.Param("restaurantId"), request.Dish)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, utils.MsgDishAdded, gin.H{"restaurant": restaurant})
}

// RemoveDish handles DELETE /restaurants/:restaurantId/menu/:dishName
func (h *MenuHandler) RemoveDish(c *gin.Context) {
	restaurant, err := h.menuService.RemoveDish(c.Request.Context(), c.Param("restaurantId"), c.Param("dishName"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgDishRemoved, gin.H{"restaurant": restaurant})
}

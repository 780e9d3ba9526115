package handlers

import (
	"net/http"

	"restrohub/internal/services"
	"restrohub/internal/utils"
	"restrohub/internal/validators"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// AddReview handles POST /restaurants/:restaurantId/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var request validators.AddReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, utils.NewValidationError("", "invalid request: "+err.Error()))
		return
	}

	restaurant, err := h.reviewService.AddReview(c.Request.Context(), c.Param("restaurantId"), request.ReviewData)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, utils.MsgReviewAdded, gin.H{"restaurant": restaurant})
}

// GetReviews handles GET /restaurants/:name/reviews. The GET tree shares
// one wildcard name at this position, so the id arrives as "name".
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	restaurantID := c.Param("name")

	reviews, err := h.reviewService.GetReviews(c.Request.Context(), restaurantID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, utils.MsgReviewsFound, gin.H{"reviews": reviews})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hiddengems/internal/models/request_models"
	"hiddengems/internal/services"
	"hiddengems/pkg/middleware"
	"hiddengems/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
	}
}

func (rc *ReviewsController) AddReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := rc.reviewService.AddReview(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Review created successfully")
}

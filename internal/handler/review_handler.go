package handler

import (
	"net/http"

	"car_rental/internal/model"
	"car_rental/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves car reviews
type ReviewHandler struct {
	service service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request: "+err.Error())
		return
	}
	review, err := h.service.CreateReview(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create review")
		return
	}
	respondData(c, http.StatusCreated, review)
}

func (h *ReviewHandler) ListForCar(c *gin.Context) {
	carID, ok := paramID(c, "carId", "car ID")
	if !ok {
		return
	}
	reviews, err := h.service.ListReviewsForCar(c.Request.Context(), carID)
	if err != nil {
		respondError(c, err, "fetch reviews")
		return
	}
	respondData(c, http.StatusOK, reviews)
}

// RegisterReviewRoutes registers review routes
func (h *ReviewHandler) RegisterReviewRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews/car/:carId", h.ListForCar)
	rg.POST("/reviews", h.CreateReview)
}

package handler

import (
	"net/http"

	"car_rental/internal/model"
	"car_rental/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves quotes, bookings and rental transitions
type BookingHandler struct {
	service service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(s service.BookingService) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) CalculateCost(c *gin.Context) {
	var req model.CostQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request: "+err.Error())
		return
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, err, "calculate cost")
		return
	}

	cost, err := h.service.Quote(c.Request.Context(), req.CarID, start, end)
	if err != nil {
		respondError(c, err, "calculate cost")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"total_cost": cost,
		"car_id":     req.CarID,
		"start_date": start,
		"end_date":   end,
	})
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request: "+err.Error())
		return
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, err, "create booking")
		return
	}

	rental, err := h.service.CreateBooking(c.Request.Context(), service.CreateBookingInput{
		CarID:     req.CarID,
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(c, err, "create booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Booking created successfully",
		"rental_id":  rental.ID,
		"total_cost": rental.TotalCost,
	})
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	rentals, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch bookings")
		return
	}
	respondData(c, http.StatusOK, rentals)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := paramID(c, "id", "rental ID")
	if !ok {
		return
	}
	rental, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch booking")
		return
	}
	respondData(c, http.StatusOK, rental)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c, "id", "rental ID")
	if !ok {
		return
	}
	rental, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled", "data": rental})
}

func (h *BookingHandler) RecalculateCost(c *gin.Context) {
	id, ok := paramID(c, "id", "rental ID")
	if !ok {
		return
	}
	rental, err := h.service.RecalculateCost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "recalculate cost")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rental cost recalculated", "data": rental})
}

func (h *BookingHandler) StartRental(c *gin.Context) {
	id, ok := paramID(c, "id", "rental ID")
	if !ok {
		return
	}
	rental, err := h.service.StartRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "start rental")
		return
	}
	respondData(c, http.StatusOK, rental)
}

func (h *BookingHandler) CompleteRental(c *gin.Context) {
	id, ok := paramID(c, "id", "rental ID")
	if !ok {
		return
	}
	rental, err := h.service.CompleteRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "complete rental")
		return
	}
	respondData(c, http.StatusOK, rental)
}

func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch rental statistics")
		return
	}
	respondData(c, http.StatusOK, stats)
}

// RegisterBookingRoutes registers booking and rental routes
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/calculate-cost", h.CalculateCost)
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)

	rentals := rg.Group("/rentals")
	{
		rentals.POST("/:id/cancel", h.CancelBooking)
		rentals.POST("/:id/recalculate", h.RecalculateCost)
		rentals.POST("/:id/start", authMW, adminMW, h.StartRental)
		rentals.POST("/:id/complete", authMW, adminMW, h.CompleteRental)
	}

	rg.GET("/stats/rentals", authMW, adminMW, h.Stats)
}

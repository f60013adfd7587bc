package handler

import (
	"net/http"

	"car_rental/internal/model"
	"car_rental/internal/service"

	"github.com/gin-gonic/gin"
)

// CarHandler serves the catalog
type CarHandler struct {
	service service.CarService
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(s service.CarService) *CarHandler {
	return &CarHandler{service: s}
}

func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.service.ListCars(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch cars")
		return
	}
	respondData(c, http.StatusOK, cars)
}

func (h *CarHandler) GetCar(c *gin.Context) {
	id, ok := paramID(c, "id", "car ID")
	if !ok {
		return
	}
	car, err := h.service.GetCar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch car")
		return
	}
	respondData(c, http.StatusOK, car)
}

func (h *CarHandler) ListCarTypes(c *gin.Context) {
	types, err := h.service.ListCarTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch car types")
		return
	}
	respondData(c, http.StatusOK, types)
}

func (h *CarHandler) GetCarStatus(c *gin.Context) {
	id, ok := paramID(c, "carId", "car ID")
	if !ok {
		return
	}
	status, err := h.service.GetCarStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "check car status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "car_id": id, "status": status})
}

// UpdateStatus is the admin maintenance toggle
func (h *CarHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id", "car ID")
	if !ok {
		return
	}
	var req model.UpdateCarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request: "+err.Error())
		return
	}

	car, err := h.service.SetCarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "update car status")
		return
	}
	respondData(c, http.StatusOK, car)
}

// RegisterCarRoutes registers catalog routes
func (h *CarHandler) RegisterCarRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/cars", h.ListCars)
	rg.GET("/cars/:id", h.GetCar)
	rg.GET("/car-types", h.ListCarTypes)
	rg.GET("/car-status/:carId", h.GetCarStatus)

	rg.PATCH("/cars/:id/status", authMW, adminMW, h.UpdateStatus)
}

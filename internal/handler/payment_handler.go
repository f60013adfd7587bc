package handler

import (
	"net/http"

	"car_rental/internal/model"
	"car_rental/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler records and lists payments
type PaymentHandler struct {
	service service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request: "+err.Error())
		return
	}
	payment, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "record payment")
		return
	}
	respondData(c, http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch payments")
		return
	}
	respondData(c, http.StatusOK, payments)
}

// RegisterPaymentRoutes registers payment routes
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/payments", h.CreatePayment)
	rg.GET("/payments", authMW, adminMW, h.ListPayments)
}

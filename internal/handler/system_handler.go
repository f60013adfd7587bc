package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"car_rental/internal/middleware"
	"car_rental/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves health and token checks
type SystemHandler struct {
	db      Pinger
	jwtUtil *utils.JWTUtil
	now     func() time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, jwtUtil *utils.JWTUtil) *SystemHandler {
	return &SystemHandler{db: db, jwtUtil: jwtUtil, now: time.Now}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Server is running",
		"timestamp": h.now().UTC(),
	})
}

// TestConnection checks the database round trip
func (h *SystemHandler) TestConnection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		log.Printf("ERROR: request_id=%s action=\"test connection\" err=%v", middleware.RequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Database connection successful",
		"timestamp": h.now().UTC(),
	})
}

// AuthCheck reports who a bearer token belongs to
func (h *SystemHandler) AuthCheck(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
		return
	}
	claims, err := h.jwtUtil.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user_id": claims.UserID, "role": claims.Role})
}

// RegisterSystemRoutes registers health and auth check routes
func (h *SystemHandler) RegisterSystemRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/test-connection", h.TestConnection)
	rg.GET("/auth/check", h.AuthCheck)
}

package handler

import (
	"log"
	"net/http"
	"strconv"

	"car_rental/internal/apperr"
	"car_rental/internal/middleware"
	"car_rental/internal/model"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// respondError writes err with the status of its kind. Server-side failures
// are logged in full and answered with "Failed to <action>".
func respondError(c *gin.Context, err error, action string) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: request_id=%s action=%q err=%v", middleware.RequestID(c), action, err)
		msg = "Failed to " + action
	}
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// paramID parses a positive integer path parameter, answering 400 otherwise
func paramID(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid "+label)
		return 0, false
	}
	return id, true
}

func parseDateRange(start, end string) (model.Date, model.Date, error) {
	s, err := model.ParseDate(start)
	if err != nil {
		return model.Date{}, model.Date{}, apperr.New(apperr.ErrValidation, "start_date: "+err.Error())
	}
	e, err := model.ParseDate(end)
	if err != nil {
		return model.Date{}, model.Date{}, apperr.New(apperr.ErrValidation, "end_date: "+err.Error())
	}
	return s, e, nil
}

// Package response provides the JSON envelope helpers used by handlers.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nearest-throne/service-restroom/internal/domain"
)

// Success writes a 200 with the standard envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 with the standard envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Error maps a service error onto the appropriate HTTP status.
func Error(c *gin.Context, err error) {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": notFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}

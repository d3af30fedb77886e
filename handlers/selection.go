package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wintermarket/models"
	"wintermarket/services/booking"
)

// StartSelection opens a fresh date-selection session in the requested
// mode and returns it with its session id.
func StartSelection(c *gin.Context) {
	var input struct {
		Mode models.SelectionMode `json:"mode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Mode == "" {
		input.Mode = models.SelectionModeSingle
	}
	if input.Mode != models.SelectionModeSingle && input.Mode != models.SelectionModeMulti {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown selection mode"})
		return
	}

	sel, err := SelectionSvc.StartSelection(c.Request.Context(), input.Mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start selection", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// GetSelection returns the current state of a selection session.
func GetSelection(c *gin.Context) {
	sel, err := SelectionSvc.GetSelection(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "selection session not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch selection", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// ToggleDate adds or removes a date from the selection. Toggling a date
// that is sold out or off the season calendar leaves the selection as is.
func ToggleDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sel, err := SelectionSvc.ToggleDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "selection session not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle date", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// ClearSelection empties the selection's dates, keeping the session alive.
func ClearSelection(c *gin.Context) {
	sel, err := SelectionSvc.ClearSelection(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "selection session not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear selection", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// SwitchMode flips a session between single and multi date selection.
// Switching always discards previously selected dates.
func SwitchMode(c *gin.Context) {
	var input struct {
		Mode models.SelectionMode `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Mode != models.SelectionModeSingle && input.Mode != models.SelectionModeMulti {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown selection mode"})
		return
	}

	sel, err := SelectionSvc.SwitchMode(c.Request.Context(), c.Param("sessionID"), input.Mode)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "selection session not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to switch mode", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wintermarket/models"
	"wintermarket/services/booking"
)

var sessionBuilder = &booking.SessionBuilder{}

// BuildBookingSession validates an application form against the current
// selection and returns the priced reservation records without committing
// anything. The frontend uses this for the review step.
func BuildBookingSession(c *gin.Context) {
	var input struct {
		VendorType models.VendorType      `json:"vendorType" binding:"required"`
		Form       models.ApplicationForm `json:"form"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sel, err := SelectionSvc.GetSelection(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "selection session not found or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch selection", "details": err.Error()})
		return
	}

	session, err := sessionBuilder.Build(sel, input.VendorType, input.Form)
	if err != nil {
		if booking.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ReserveSingle holds one booth on one event and returns the Stripe
// checkout handoff.
func ReserveSingle(c *gin.Context) {
	var input struct {
		EventID         string                   `json:"eventId" binding:"required"`
		ReservationData models.ReservationRecord `json:"reservationData" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkout, err := ReservationSvc.ReserveSingle(c.Request.Context(), input.EventID, input.ReservationData)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkout)
}

// ReserveMulti holds one booth per reservation record, all-or-nothing,
// and returns a single Stripe checkout covering the batch.
func ReserveMulti(c *gin.Context) {
	var input struct {
		Records []models.ReservationRecord `json:"records" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkout, err := ReservationSvc.ReserveMulti(c.Request.Context(), input.Records)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkout)
}

// BookingStatus reports the payment state of a checkout session's bookings.
func BookingStatus(c *gin.Context) {
	status, err := ReservationSvc.Status(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no bookings found for this checkout session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking status", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// respondReservationError maps reservation failures onto HTTP statuses:
// validation problems are the client's fault, a sold-out event is a
// conflict, anything else is a server error with the cause attached so
// the frontend can show it verbatim.
func respondReservationError(c *gin.Context, err error) {
	switch {
	case booking.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSoldOut):
		c.JSON(http.StatusConflict, gin.H{"error": booking.ErrSoldOut.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reserve spot", "details": err.Error()})
	}
}

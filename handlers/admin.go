package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"wintermarket/config"
	"wintermarket/models"
	"wintermarket/utils"
)

// AdminLogin checks the organizer's credentials and issues a JWT.
func AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access is not configured"})
		return
	}
	if input.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(input.Email, 12*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBookings returns bookings filtered by vendor type, newest first.
func ListBookings(c *gin.Context) {
	vendorType := models.VendorType(c.DefaultQuery("vendor_type", string(models.VendorTypeRegular)))
	if !vendorType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vendor type"})
		return
	}

	bookings, err := BookingRepo.ListByVendorType(c.Request.Context(), vendorType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxPhotoSize = 10 << 20 // 10 MB

// UploadVendorPhoto accepts a multipart image and stores it, returning
// the URL the application form carries in its photoUrl field.
func UploadVendorPhoto(c *gin.Context) {
	if StorageSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo uploads are not configured"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing photo file", "details": err.Error()})
		return
	}
	if header.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds the 10 MB limit"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open upload", "details": err.Error()})
		return
	}
	defer file.Close()

	url, err := StorageSvc.UploadPhoto(c.Request.Context(), file, "vendor_photos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

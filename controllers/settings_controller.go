package controllers

import (
	"net/http"

	"hotel-pms-backend/config"
	"hotel-pms-backend/models"

	"github.com/gin-gonic/gin"
)

// GetHotelSettings returns the single settings row.
func GetHotelSettings(c *gin.Context) {
	var settings models.HotelSetting
	if err := config.DB.First(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var settings models.HotelSetting
	if err := config.DB.First(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&settings).Updates(map[string]interface{}{
		"name":     payload.Name,
		"address":  payload.Address,
		"phone":    payload.Phone,
		"email":    payload.Email,
		"currency": payload.Currency,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

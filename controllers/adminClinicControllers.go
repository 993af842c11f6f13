package controllers

import (
	"net/http"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Viewing clinics
func ViewClinics(c *gin.Context) {
	var clinics []models.Clinic

	if err := configuration.DB.Find(&clinics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Clinic not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Clinics list fetched successfully",
		"data":    clinics,
	})
}

// Adding clinics
func AddClinic(c *gin.Context) {
	var clinic models.Clinic
	if err := c.BindJSON(&clinic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if a clinic with the same name and location already exists
	var existingClinic models.Clinic
	if err := configuration.DB.Where("name = ? AND location = ?", clinic.Name, clinic.Location).First(&existingClinic).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Clinic already exists",
			"message": "A clinic with the same name and location already exists",
		})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clinic.Status = "Active"
	if err := configuration.DB.Create(&clinic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Clinic details are added successfully",
		"data":    clinic})
}

// Search clinics
func SearchClinic(c *gin.Context) {
	var clinic models.Clinic

	clinicID := c.Param("id")
	if err := configuration.DB.First(&clinic, clinicID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Error": "Clinic not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Clinic details fetched successfully",
		"data":    clinic,
	})
}

// Update clinic
func UpdateClinic(c *gin.Context) {
	var clinic models.Clinic
	clinicID := c.Param("id")

	if err := configuration.DB.First(&clinic, clinicID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Error": "Clinic not found"})
		return
	}
	if err := c.BindJSON(&clinic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Error": err.Error()})
		return
	}
	if err := configuration.DB.Save(&clinic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Clinic details updated successfully",
		"data":    clinic,
	})
}

// Remove/deactivate clinic
func RemoveClinic(c *gin.Context) {
	var clinic models.Clinic

	clinicID := c.Param("id")
	if err := configuration.DB.First(&clinic, clinicID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"Status":  "Failed",
			"message": "Clinic id not found",
			"data":    err.Error(),
		})
		return
	}

	clinic.Status = "Deactive"
	configuration.DB.Save(&clinic)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "success",
		"message": "Clinic details removed successfully",
	})
}

// View deactivated clinics
func ViewDeletedClinics(c *gin.Context) {
	var clinics []models.Clinic

	if err := configuration.DB.Where("status = ?", "Deactive").Find(&clinics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching deleted clinics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Deleted clinics list fetched successfully",
		"Data":    clinics,
	})
}

// View active clinics
func ViewActiveClinics(c *gin.Context) {
	var clinics []models.Clinic

	if err := configuration.DB.Where("status = ?", "Active").Find(&clinics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching clinics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Active Clinics": clinics})
}

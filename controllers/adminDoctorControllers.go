package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"os"
	"strings"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// View verified doctors
func ViewVerifiedDoctors(c *gin.Context) {
	var doctors []models.Doctor

	if err := configuration.DB.Where("verified = ?", "true").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching verified doctors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Verified doctors list fetched successfully",
		"data":    doctors,
	})
}

// View not verified doctors
func ViewNotVerifiedDoctors(c *gin.Context) {
	var doctors []models.Doctor

	if err := configuration.DB.Where("verified = ?", "false").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching doctors list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}

// View verified and approved doctors
func ViewVerifiedApprovedDoctors(c *gin.Context) {
	var doctors []models.Doctor

	if err := configuration.DB.Where("verified = ? AND approved = ?", "true", "true").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching verified and approved doctors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Verified and approved doctors list fetched successfully",
		"data":    doctors,
	})
}

// View verified but not approved doctors
func ViewVerifiedNotApprovedDoctors(c *gin.Context) {
	var doctors []models.Doctor

	if err := configuration.DB.Where("verified = ? AND approved = ?", "true", "false").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching verified doctors awaiting approval"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Verified doctors awaiting approval fetched successfully",
		"data":    doctors,
	})
}

// Update doctor credentials
func UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	doctorID := c.Param("id")

	if err := configuration.DB.First(&doctor, doctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Error": "No doctor with this ID"})
		return
	}

	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Error": err.Error()})
		return
	}
	if err := configuration.DB.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": err.Error()})
		return
	}

	// Send email to the doctor with the updated details
	if err := SendEmailToDoctor(doctor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Doctor details have been updated successfully",
		"data":    doctor,
	})
}

func SendEmailToDoctor(doctor models.Doctor) error {
	name := fmt.Sprintf("%s %s", doctor.FirstName, doctor.LastName)
	subject := "Your details have been updated"
	body := fmt.Sprintf("Hello %s,\n\nYour details have been successfully updated.\n\nUpdated details:\nName: %s\nSpecialization: %s\nEmail: %s\nPhone: %s\nLicense Number: %s\nVerified: %s\nApproved: %s\n",
		name, name, doctor.Specialization, doctor.Email, doctor.Phone, doctor.LicenseNumber, doctor.Verified, doctor.Approved)

	SMTPemail := os.Getenv("Email")
	SMTPpass := os.Getenv("Password")
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	auth := smtp.PlainAuth("", SMTPemail, SMTPpass, smtpHost)

	headers := make(map[string]string)
	headers["From"] = "Clinic Connect <" + SMTPemail + ">"
	headers["To"] = doctor.Email
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/plain; charset=\"utf-8\""

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, SMTPemail, []string{doctor.Email}, []byte(msg.String()))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}

	return nil
}

// View all doctors list
func ViewDoctors(c *gin.Context) {
	var doctors []models.Doctor

	if err := configuration.DB.Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Doctors not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}

// Get doctor details by id
func GetDoctorByID(c *gin.Context) {
	var doctor models.Doctor
	doctorID := c.Param("id")

	if err := configuration.DB.First(&doctor, doctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Error": "Couldn't get doctor details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor details fetched successfully",
		"data":    doctor,
	})
}

// Get doctor details by case-insensitive first/last name
func GetDoctorByName(c *gin.Context) {
	var doctor models.Doctor
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")

	if firstName == "" || lastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first_name and last_name are required"})
		return
	}

	if err := configuration.DB.
		Where("LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)", firstName, lastName).
		First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No doctor with this name"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get doctor details", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor details fetched successfully",
		"data":    doctor,
	})
}

// Get doctors details by speciality
func GetDoctorBySpeciality(c *gin.Context) {
	var doctors []models.Doctor
	doctorSpeciality := c.Param("specialization")
	if err := configuration.DB.Where("specialization = ?", doctorSpeciality).Find(&doctors).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No doctors found with the specified speciality"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't get doctors details",
			"details": err.Error()})
		return
	}
	if len(doctors) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No doctors found with the specified speciality"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors details list fetched successfully",
		"data":    doctors,
	})
}

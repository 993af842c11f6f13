package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"clinic-connect/authentication"
	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// PatientLogin handles the patient login process
func PatientLogin(c *gin.Context) {
	var loginReq struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingPatient models.Patient
	if err := configuration.DB.Where("phone = ?", loginReq.Phone).First(&existingPatient).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone number or phone number is not present"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingPatient.Password), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid phone number or password"})
		return
	}

	token, err := authentication.GeneratePatientToken(existingPatient.PatientID, loginReq.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Login successful",
		"token":   token,
	})
}

// PatientSignup stores the pending patient in redis and sends a phone OTP
func PatientSignup(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	patient.Password = string(hashedPassword)

	var existingPatient models.Patient
	if err := configuration.DB.Where("phone = ?", patient.Phone).First(&existingPatient).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Patient already exists"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database error"})
		return
	}

	if err := SendOTP(patient.Phone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send OTP", "data": err.Error()})
		return
	}

	patientData, err := json.Marshal(&patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal patient", "data": err.Error()})
		return
	}

	key := fmt.Sprintf("user:%s", patient.Phone)
	if err := configuration.SetRedis(key, patientData, time.Minute*5); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": false, "Data": nil, "Message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Otp generated successfully. Proceed to verification page>>>"})
}

// SendOTP sends a verification code to the patient's phone number
func SendOTP(phoneNumber string) error {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTHTOKEN")

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	params := verify.CreateVerificationParams{}
	params.SetTo(phoneNumber)
	params.SetChannel("sms")

	_, err := client.VerifyV2.CreateVerification(os.Getenv("TWILIO_SERVICE_ID"), &params)
	return err
}

// UserOtpVerify checks the phone OTP and creates the patient record
func UserOtpVerify(c *gin.Context) {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTHTOKEN")

	var OTPverify models.VerifyOTP
	if err := c.BindJSON(&OTPverify); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": false, "Data": nil, "Message": "Failed to parse JSON data"})
		return
	}

	if OTPverify.Otp == "" {
		c.JSON(http.StatusBadRequest, gin.H{"Status": false, "Message": "OTP is required"})
		return
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	params := verify.CreateVerificationCheckParams{}
	params.SetTo(OTPverify.Phone)
	params.SetCode(OTPverify.Otp)

	response, err := client.VerifyV2.CreateVerificationCheck(os.Getenv("TWILIO_SERVICE_ID"), &params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": false, "Data": nil, "Message": "error in verifying provided OTP"})
		return
	} else if *response.Status != "approved" {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": false, "Data": nil, "Message": "Wrong OTP provided"})
		return
	}

	key := fmt.Sprintf("user:%s", OTPverify.Phone)
	value, err := configuration.GetRedis(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  false,
			"Data":    nil,
			"Message": "Internal server error",
		})
		return
	}

	var userData models.Patient
	if err := json.Unmarshal([]byte(value), &userData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unmarshal patient", "data": err.Error()})
		return
	}

	if err := configuration.DB.Create(&userData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": false, "Data": nil, "Message": "Failed to create user"})
		return
	}

	// Every patient starts with an empty wallet
	wallet := models.Wallet{
		UserID: userData.PatientID,
		Amount: 0,
	}
	if err := configuration.DB.Create(&wallet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": false, "Data": nil, "Message": "Failed to create wallet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  true,
		"Message": "OTP verified successfully and user has been created. Login to continue...",
	})
}

// User logout
func PatientLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You are successfully logged out"})
}

package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errInsufficientFunds = errors.New("insufficient wallet balance")

// debitWallet subtracts amount from the user's balance in a single guarded
// UPDATE, so the balance can never go negative even under concurrent debits.
func debitWallet(db *gorm.DB, userID int, amount float64) error {
	res := db.Model(&models.Wallet{}).
		Where("user_id = ? AND amount >= ?", userID, amount).
		Update("amount", gorm.Expr("amount - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errInsufficientFunds
	}
	return nil
}

// Wallet helps to get user wallet by user id
func Wallet(c *gin.Context) {
	userid := c.Param("userid")

	var wallet models.Wallet
	if err := configuration.DB.Where("user_id = ?", userid).First(&wallet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "failed to find user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"Status":        "Success",
		"Wallet Amount": wallet.Amount,
	})
}

// CancelAppointment is a handler function for cancelling an appointment.
func CancelAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := configuration.DB.Where("appointment_id = ?", c.Param("id")).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if appointment.BookingStatus == "cancelled" {
		c.JSON(http.StatusBadRequest, gin.H{"Error": "Appointment has already been cancelled"})
		return
	}

	if appointment.BookingStatus == "completed" {
		c.JSON(http.StatusBadRequest, gin.H{"Error": "This appointment has already been completed"})
		return
	}

	if appointment.BookingStatus != "confirmed" {
		c.JSON(http.StatusBadRequest, gin.H{"Error": "Appointment cannot be cancelled as it is not confirmed"})
		return
	}

	var invoice models.Invoice
	if err := configuration.DB.Where("appointment_id = ?", c.Param("id")).First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if invoice.PaymentMethod == "online" {
		// Refund applicable for online payments, 5% cancellation fee retained
		refundAmount := invoice.TotalAmount * 0.95

		invoice.PaymentStatus = "refunded"
		if err := configuration.DB.Save(&invoice).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to update invoice"})
			return
		}

		var wallet models.Wallet
		if err := configuration.DB.Where("user_id = ?", appointment.PatientID).First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				wallet = models.Wallet{
					UserID: appointment.PatientID,
					Amount: refundAmount,
				}
				if err := configuration.DB.Create(&wallet).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to create wallet"})
					return
				}
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch wallet"})
				return
			}
		} else {
			wallet.Amount += refundAmount
			if err := configuration.DB.Save(&wallet).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to update wallet"})
				return
			}
		}

		appointment.BookingStatus = "cancelled"
		if err := configuration.DB.Save(&appointment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to update appointment status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Appointment Cancelled. Refund amount: %.2f", refundAmount),
		})
	} else {
		// For offline payments, simply cancel the appointment without refunding
		appointment.BookingStatus = "cancelled"

		if err := configuration.DB.Save(&appointment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to update appointment status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Appointment Cancelled. Amount cannot be refunded as payment method was not online"})
	}
}

func PayFromWallet(c *gin.Context) {
	var paymentRequest struct {
		InvoiceID uint `json:"invoice_id"`
	}

	if err := c.BindJSON(&paymentRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var invoice models.Invoice
	if err := configuration.DB.Where("invoice_id = ?", paymentRequest.InvoiceID).First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if invoice.PaymentStatus == "Paid" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice already paid"})
		return
	}

	var wallet models.Wallet
	if err := configuration.DB.Where("user_id = ?", invoice.PatientID).First(&wallet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallet details"})
		return
	}

	if wallet.Amount < invoice.TotalAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance in wallet"})
		return
	}

	tx := configuration.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	invoice.PaymentStatus = "Paid"
	invoice.PaymentMethod = "online"
	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
		return
	}

	if err := debitWallet(tx, wallet.UserID, invoice.TotalAmount); err != nil {
		tx.Rollback()
		if errors.Is(err, errInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance in wallet"})
			return
		}
		log.Println("Failed to update wallet balance:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wallet balance"})
		return
	}

	var appointment models.Appointment
	if err := tx.Where("appointment_id = ?", invoice.AppointmentID).First(&appointment).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	appointment.BookingStatus = "confirmed"
	appointment.PaymentStatus = "paid"
	if err := tx.Save(&appointment).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment status"})
		return
	}

	tx.Commit()

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, appointment.DoctorID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor details"})
		return
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, appointment.PatientID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patient details"})
		return
	}

	pdfInvoice, err := GeneratePaidPDFInvoice(appointment, invoice, doctor, patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF invoice"})
		return
	}

	err = SendAttachmentEmail("Payment Confirmation mail", "Payment successful for invoice", appointment.PatientEmail, "invoice.pdf", pdfInvoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment from wallet successful"})
}

// RequestWithdrawal lets a doctor request a payout from their wallet balance.
func RequestWithdrawal(c *gin.Context) {
	doctorIDVal, exists := c.Get("doctor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}
	doctorID := doctorIDVal.(uint)

	var withdrawalRequest struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BindJSON(&withdrawalRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if withdrawalRequest.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Withdrawal amount must be positive"})
		return
	}

	tx := configuration.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var wallet models.Wallet
	if err := tx.Where("user_id = ?", doctorID).First(&wallet).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		return
	}

	if err := debitWallet(tx, wallet.UserID, withdrawalRequest.Amount); err != nil {
		tx.Rollback()
		if errors.Is(err, errInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance in wallet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wallet balance"})
		return
	}

	withdrawal := models.Withdrawal{
		DoctorID:  doctorID,
		Amount:    withdrawalRequest.Amount,
		Status:    "pending",
		PayoutRef: generateUniqueID(),
	}
	if err := tx.Create(&withdrawal).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create withdrawal request"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"status":     "Success",
		"message":    "Withdrawal request submitted",
		"withdrawal": withdrawal,
	})
}

// WithdrawalHistory lists a doctor's withdrawal requests, newest first.
func WithdrawalHistory(c *gin.Context) {
	doctorIDVal, exists := c.Get("doctor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}
	doctorID := doctorIDVal.(uint)

	var withdrawals []models.Withdrawal
	if err := configuration.DB.Where("doctor_id = ?", doctorID).Order("created_at DESC").Find(&withdrawals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch withdrawal history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Withdrawal history fetched successfully",
		"data":    withdrawals,
	})
}

// ApproveWithdrawal marks a pending withdrawal as paid. Admin only.
func ApproveWithdrawal(c *gin.Context) {
	var withdrawal models.Withdrawal
	if err := configuration.DB.Where("withdrawal_id = ?", c.Param("id")).First(&withdrawal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
		return
	}

	if withdrawal.Status != "pending" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Withdrawal is not pending"})
		return
	}

	withdrawal.Status = "paid"
	if err := configuration.DB.Save(&withdrawal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update withdrawal status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":     "Success",
		"Message":    "Withdrawal approved",
		"withdrawal": withdrawal,
	})
}

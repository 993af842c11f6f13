package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/razorpay/razorpay-go"
	"gorm.io/gorm"
)

func GetInvoice(c *gin.Context) {
	var invoice []models.Invoice
	if err := configuration.DB.Find(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error occured while receiving the invoice",
		})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// To make payment offline
func PayInvoiceOffline(c *gin.Context) {
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

	invoice.PaymentStatus = "Paid"
	invoice.PaymentMethod = "Offline"
	if err := configuration.DB.Save(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
		return
	}

	var appointment models.Appointment
	if err := configuration.DB.Where("appointment_id = ?", invoice.AppointmentID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	appointment.BookingStatus = "confirmed"
	appointment.PaymentStatus = "paid"
	if err := configuration.DB.Save(&appointment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment status"})
		return
	}

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

	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Invoice payment successful",
		"invoice": invoice,
	})
}

// PageVariable struct holds data to be passed to the HTML template.
type PageVariable struct {
	AppointmentID string
}

// Function for processing online payments
func MakePaymentOnline(c *gin.Context) {
	invoiceID := c.Query("id")
	id, err := strconv.Atoi(invoiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return
	}

	var invoice models.Invoice
	if err := configuration.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "Failed",
				"message": "Invoice Not Found",
				"data":    err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch the invoice",
		})
		return
	}

	if invoice.PaymentStatus == "Paid" {
		c.JSON(400, gin.H{"error": "Invoice is already paid"})
		return
	}

	razorpayment := &models.RazorPay{
		InvoiceID:  uint(invoice.InvoiceID),
		AmountPaid: invoice.TotalAmount,
	}

	razorpayment.RazorPaymentID = generateUniqueID()
	if err := configuration.DB.Create(&razorpayment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create razor payment"})
		return
	}

	// RazorPay amounts are in paisa
	amountInPaisa := invoice.TotalAmount * 100
	razorpayClient := razorpay.NewClient(os.Getenv("RazorPay_key_id"), os.Getenv("RazorPay_key_secret"))

	data := map[string]interface{}{
		"amount":   amountInPaisa,
		"currency": "INR",
		"receipt":  fmt.Sprintf("invoice_%d", invoice.InvoiceID),
	}

	body, err := razorpayClient.Order.Create(data, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to create razorpay order"})
		return
	}

	value := body["id"]
	str := value.(string)

	homepagevariables := PageVariable{
		AppointmentID: str,
	}

	c.HTML(http.StatusOK, "payment.html", gin.H{
		"invoiceID":     id,
		"totalPrice":    amountInPaisa / 100,
		"total":         amountInPaisa,
		"appointmentID": homepagevariables.AppointmentID,
	})
}

func generateUniqueID() string {
	id := uuid.New()
	return id.String()
}

// Function to display success page after successful payment
func SuccessPage(c *gin.Context) {
	paymentID := c.Query("bookID")

	var invoice models.Invoice
	if err := configuration.DB.First(&invoice, paymentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error": "Failed to fetch the invoice",
		})
		return
	}

	if invoice.PaymentStatus == "Pending" {
		if err := configuration.DB.Model(&invoice).Update("payment_status", "Paid").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"Error": "Failed to update the invoice payment status",
			})
			return
		}
	}

	if err := configuration.DB.Model(&invoice).Update("payment_method", "online").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error": "Failed to update the payment method",
		})
		return
	}

	razorPayment := models.RazorPay{
		InvoiceID:      uint(invoice.InvoiceID),
		RazorPaymentID: generateUniqueID(),
		AmountPaid:     invoice.TotalAmount,
	}

	if err := configuration.DB.Create(&razorPayment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error": "Failed to create RazorPay Payment",
		})
		return
	}

	if invoice.AppointmentID != 0 {
		if err := configuration.DB.Model(&models.Appointment{}).Where("appointment_id = ?", invoice.AppointmentID).Updates(map[string]interface{}{"booking_status": "confirmed", "payment_status": "paid"}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"Error": "Failed to update the appointment status",
			})
			return
		}
	}

	var booking models.Appointment
	if err := configuration.DB.First(&booking, invoice.AppointmentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking details"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, booking.DoctorID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor details"})
		return
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, booking.PatientID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch patient details"})
		return
	}

	pdfInvoice, err := GeneratePaidPDFInvoice(booking, invoice, doctor, patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF invoice"})
		return
	}

	err = SendAttachmentEmail("Payment Confirmation mail", "Payment successful for invoice", booking.PatientEmail, "invoice.pdf", pdfInvoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"paymentID":  razorPayment.RazorPaymentID,
		"amountPaid": invoice.TotalAmount,
		"invoiceID":  invoice.InvoiceID,
	})
}

// GeneratePaidPDFInvoice builds the PDF invoice sent after a successful payment
func GeneratePaidPDFInvoice(booking models.Appointment, invoice models.Invoice, doctor models.Doctor, patient models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)

	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Clinic Connect - Appointment Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "www.clinicconnect.com", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Invoice", "1", 1, "C", false, 0, "")
	add2Detail(pdf, "Invoice ID", fmt.Sprintf("%d", invoice.InvoiceID), true)
	add2Detail(pdf, "Doctor Name", fmt.Sprintf("%s %s", doctor.FirstName, doctor.LastName), true)
	add2Detail(pdf, "Specialization", doctor.Specialization, true)
	add2Detail(pdf, "Patient Name", patient.Name, true)
	add2Detail(pdf, "Appointment ID", fmt.Sprintf("%d", booking.AppointmentID), true)
	add2Detail(pdf, "Appointment Date", booking.AppointmentDate.Format("2006-01-02"), true)
	add2Detail(pdf, "Time Slot", booking.AppointmentTimeSlot, true)
	add2Detail(pdf, "Consultation Mode", booking.ConsultationMode, true)

	pdf.CellFormat(0, 10, "Invoice Details", "1", 1, "C", false, 0, "")
	add2Detail(pdf, "Booking Status", booking.BookingStatus, false)
	add2Detail(pdf, "Due date", invoice.PaymentDueDate.Format("2006-01-02"), false)
	add2Detail(pdf, "Paid date", invoice.UpdatedAt.Format("2006-01-02"), false)
	add2Detail(pdf, "CGST (0%)", "0.00", false)
	add2Detail(pdf, "SGST (0%)", "0.00", false)
	pdf.SetFont("Arial", "B", 13)
	add2Detail(pdf, "Grand Total", fmt.Sprintf("%.2f", invoice.TotalAmount), true)
	pdf.SetTextColor(139, 128, 0)
	add2Detail(pdf, "Amount Paid", fmt.Sprintf("%.2f", invoice.TotalAmount), true)

	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 5, "Thank you for using our service.", "", "L", false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated invoice", "", 1, "R", false, 0, "")

	var pdfBuffer bytes.Buffer
	err := pdf.Output(&pdfBuffer)
	if err != nil {
		return nil, err
	}

	return pdfBuffer.Bytes(), nil
}

// add2Detail adds a detail line to the PDF
func add2Detail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}

package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// ViewClinic retrieves a list of active clinics
func ViewClinic(c *gin.Context) {
	var clinics []models.Clinic

	if err := configuration.DB.Where("status = ?", "Active").Find(&clinics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Clinic not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Clinics list fetched successfully",
		"data":    clinics,
	})
}

// DoctorLogout
func DoctorLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You are successfully logged out"})
}

// AddPrescription records a prescription for a confirmed appointment,
// marks the appointment completed and mails the patient a PDF copy.
func AddPrescription(c *gin.Context) {
	var prescription models.Prescription
	if err := c.BindJSON(&prescription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctorID, ok := c.Get("doctor_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}
	prescription.DoctorID = doctorID.(uint)

	// Check if doctor exists
	var doctor models.Doctor
	if err := configuration.DB.Where("doctor_id = ?", doctorID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid doctor ID"})
		return
	}

	// Check if patient exists
	var patient models.Patient
	if err := configuration.DB.Where("patient_id = ?", prescription.PatientID).First(&patient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid patient ID"})
		return
	}

	// Check if appointment exists for the doctor and patient
	var appointment models.Appointment
	if err := configuration.DB.Where("doctor_id = ? AND patient_id = ? AND appointment_id = ?",
		doctorID, prescription.PatientID, prescription.AppointmentID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No confirmed appointment found for the doctor and patient"})
		return
	}

	switch appointment.BookingStatus {
	case "pending":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment is not confirmed"})
		return
	case "completed":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prescription already added for this appointment"})
		return
	case "cancelled":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment has been cancelled"})
		return
	}

	if err := configuration.DB.Create(&prescription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add prescription"})
		return
	}

	if err := configuration.DB.Model(&appointment).Update("booking_status", "completed").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment status"})
		return
	}

	pdfPrescription, err := GeneratePrescriptionPDF(appointment, doctor, patient, prescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF prescription"})
		return
	}

	err = SendAttachmentEmail("Prescription e-mail", "Prescription attachment", patient.Email, "prescription.pdf", pdfPrescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":       "Success",
		"Message":      "Prescription added successfully",
		"prescription": prescription,
	})
}

func GetAppHistory(c *gin.Context) {
	var appointment []models.Appointment
	doctorID := c.Param("id")

	if err := configuration.DB.Where("doctor_id = ?", doctorID).Find(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid doctor id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't get appointment details",
			"details": err.Error()})
		return
	}
	if len(appointment) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment history fetched successfully",
		"data":    appointment,
	})
}

func GetDoctorAppointmentsByDate(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	dateStr := c.Query("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	var appointments []models.Appointment
	if err := configuration.DB.Where("doctor_id = ? AND appointment_date = ? AND booking_status = ?",
		doctorID, date, "confirmed").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	bookedTimeSlots := make(map[string]bool)
	for _, appointment := range appointments {
		bookedTimeSlots[appointment.AppointmentTimeSlot] = true
	}

	c.JSON(http.StatusOK, bookedTimeSlots)
}

// Generates a PDF prescription
func GeneratePrescriptionPDF(appointment models.Appointment, doctor models.Doctor, patient models.Patient, prescription models.Prescription) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Doctor Prescription", "", 1, "C", false, 0, "")

	doctorName := fmt.Sprintf("Dr. %s %s", doctor.FirstName, doctor.LastName)

	pdf.SetFont("Arial", "B", 12)
	add1Detail(pdf, "Doctor Name:", doctorName, true)
	add1Detail(pdf, "Specialization:", doctor.Specialization, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	add1Detail(pdf, "Patient Name:", patient.Name, true)
	add1Detail(pdf, "Age:", patient.Age, false)
	add1Detail(pdf, "Gender:", patient.Gender, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	add1Detail(pdf, "Appointment Date:", appointment.AppointmentDate.Format("2006-01-02"), true)
	add1Detail(pdf, "Time Slot:", appointment.AppointmentTimeSlot, false)
	add1Detail(pdf, "Consultation Mode:", appointment.ConsultationMode, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	add1Detail(pdf, "Prescription ID:", fmt.Sprintf("%d", prescription.ID), true)
	add1Detail(pdf, "Medicines:", prescription.Medicines, false)
	add1Detail(pdf, "Instructions:", prescription.PrescriptionText, false)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, "Follow the instructions given by the doctor properly. Your health is all that matters!", "", "C", false)

	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return nil, err
	}
	return pdfBuffer.Bytes(), nil
}

// add1Detail adds a detail line to the PDF
func add1Detail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 12)
	}
	pdf.CellFormat(0, 10, label, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "", 1, "", false, 0, "")
}

package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"clinic-connect/configuration"
	"clinic-connect/models"
	"clinic-connect/schedule"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// eventsForDay expands a doctor's stored availability and keeps the events
// falling on the given calendar day.
func eventsForDay(doctorID uint, date time.Time, now time.Time) ([]schedule.Event, error) {
	var rows []models.Availability
	if err := configuration.DB.Preload("Slots").Where("doctor_id = ?", doctorID).Find(&rows).Error; err != nil {
		return nil, err
	}

	day := schedule.FormatDay(date)
	all := schedule.Expand(toScheduleRecords(rows), now)
	events := make([]schedule.Event, 0, len(all))
	for _, ev := range all {
		if strings.HasPrefix(ev.Start, day) {
			events = append(events, ev)
		}
	}
	return events, nil
}

// GetAvailableTimeSlots lists the bookable events of a doctor on one day,
// with slots already taken by confirmed or completed appointments removed.
func GetAvailableTimeSlots(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	dateStr := c.Query("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date cannot be in the past"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.Where("doctor_id = ?", doctorID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	events, err := eventsForDay(doctor.DoctorID, date, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	var bookings []models.Appointment
	if err := configuration.DB.Where("doctor_id = ? AND appointment_date = ? AND (booking_status = ? OR booking_status = ?)",
		doctorID, date, "confirmed", "completed").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	bookedTimeSlots := make(map[string]bool)
	for _, booking := range bookings {
		bookedTimeSlots[booking.AppointmentTimeSlot] = true
	}

	adjusted := make([]schedule.Event, 0, len(events))
	for _, ev := range events {
		if !bookedTimeSlots[eventTimeSlot(ev)] {
			adjusted = append(adjusted, ev)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Time slots fetched successfully",
		"date":                 dateStr,
		"available_time_slots": adjusted,
	})
}

// eventTimeSlot renders an event interval in the HH:mm-HH:mm form stored
// on appointments.
func eventTimeSlot(ev schedule.Event) string {
	return fmt.Sprintf("%s-%s", ev.Start[len(ev.Start)-5:], ev.End[len(ev.End)-5:])
}

// BookAppointment books one expanded calendar event for the authenticated
// patient. The requested slot must exist on the doctor's calendar for that
// day, must not be inside the 24-hour lock window and the chosen
// consultation mode must be offered.
func BookAppointment(c *gin.Context) {
	var booking models.Appointment

	if err := c.BindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}
	booking.PatientID = patientID.(int)

	if booking.AppointmentDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment date cannot be in the past"})
		return
	}

	events, err := eventsForDay(uint(booking.DoctorID), booking.AppointmentDate, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor availability"})
		return
	}
	if len(events) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor availability not found"})
		return
	}

	var matched *schedule.Event
	for i := range events {
		if eventTimeSlot(events[i]) == booking.AppointmentTimeSlot {
			matched = &events[i]
			break
		}
	}
	if matched == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment time slot not available"})
		return
	}
	if matched.IsLocked {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment slot is within the 24 hour lock window"})
		return
	}
	if booking.ConsultationMode != "" && !modeOffered(matched.Modes, booking.ConsultationMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Consultation mode not offered for this slot"})
		return
	}

	// Check for existing appointments with the same date and time slot
	if !isAppointmentAvailable(booking.DoctorID, booking.AppointmentDate, booking.AppointmentTimeSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Another appointment has been already booked for the same date and time slot with the doctor"})
		return
	}

	// Check if the patient exists
	var patient models.Patient
	if err := configuration.DB.Where("patient_id = ?", booking.PatientID).First(&patient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wrong patient ID"})
		return
	}

	// Check for duplicate appointments with the same doctor on the same day
	if isDuplicateAppointment(booking.PatientID, booking.DoctorID, booking.AppointmentDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your appointment has been already booked with the same doctor in the same day"})
		return
	}

	booking.BookingStatus = "pending"
	booking.PaymentStatus = "pending"
	if err := configuration.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.Where("doctor_id = ?", booking.DoctorID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor's consultancy charge"})
		return
	}

	totalAmount := doctor.ConsultancyCharge

	invoice := models.Invoice{
		DoctorID:       uint(booking.DoctorID),
		PatientID:      uint(booking.PatientID),
		AppointmentID:  uint(booking.AppointmentID),
		TotalAmount:    float64(totalAmount) + 50,
		PaymentMethod:  "Pending",
		PaymentStatus:  "Pending",
		PaymentDueDate: time.Now().AddDate(0, 0, 1),
	}

	if err := configuration.DB.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	pdfInvoice, err := generateDuePDFInvoice(booking, invoice, doctor, patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF invoice"})
		return
	}

	err = SendAttachmentEmail("Payment Due mail", "Payment due invoice", booking.PatientEmail, "invoice.pdf", pdfInvoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment booked successfully",
		"Data":    booking,
		"Invoice": invoice,
	})
}

func modeOffered(modes []string, mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

func isAppointmentAvailable(doctorID int, date time.Time, appointmentTimeSlot string) bool {
	var existingAppointment models.Appointment
	err := configuration.DB.Where("doctor_id = ? AND appointment_date = ? AND appointment_time_slot = ?",
		doctorID, date, appointmentTimeSlot).First(&existingAppointment).Error
	if err == nil {
		if existingAppointment.BookingStatus == "confirmed" || existingAppointment.BookingStatus == "completed" {
			return false
		}
		// Appointment available if pending or cancelled
		return true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error checking for existing appointment:", err)
		return false
	}
	return true
}

func isDuplicateAppointment(patientID int, doctorID int, date time.Time) bool {
	var existingAppointments []models.Appointment
	err := configuration.DB.Where("patient_id = ? AND doctor_id = ? AND appointment_date = ? AND booking_status IN (?, ?, ?)",
		patientID, doctorID, date, "pending", "confirmed", "completed").Find(&existingAppointments).Error
	if err != nil {
		log.Println("Error checking for existing appointments:", err)
		return true
	}
	return len(existingAppointments) > 0
}

// Function to generate pdf due invoice
func generateDuePDFInvoice(booking models.Appointment, invoice models.Invoice, doctor models.Doctor, patient models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Clinic Connect", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "www.clinic-connect.example", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Due Invoice", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Invoice ID", fmt.Sprintf("%d", invoice.InvoiceID), true)
	addDetail(pdf, "Doctor Name", fmt.Sprintf("Dr. %s %s", doctor.FirstName, doctor.LastName), true)
	addDetail(pdf, "Specialization", doctor.Specialization, true)
	addDetail(pdf, "Patient Name", patient.Name, true)
	addDetail(pdf, "Appointment ID", fmt.Sprintf("%d", booking.AppointmentID), true)
	addDetail(pdf, "Appointment Date", booking.AppointmentDate.Format("2006-01-02"), true)
	addDetail(pdf, "Time Slot", booking.AppointmentTimeSlot, true)
	addDetail(pdf, "Consultation Mode", booking.ConsultationMode, true)

	pdf.CellFormat(0, 10, "Invoice Details", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Booking Status", booking.BookingStatus, false)
	addDetail(pdf, "Due date", invoice.PaymentDueDate.Format("2006-01-02"), false)
	pdf.SetFont("Arial", "B", 13)
	addDetail(pdf, "Grand Total", fmt.Sprintf("%.2f", invoice.TotalAmount), true)
	pdf.SetTextColor(139, 128, 0)
	addDetail(pdf, "Balance due", fmt.Sprintf("%.2f", invoice.TotalAmount), true)

	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Payment Instructions:", "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, "Thank you for initiating the appointment. To confirm your booking status please make the payment.", "", "L", false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated invoice", "", 1, "R", false, 0, "")

	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return nil, err
	}
	return pdfBuffer.Bytes(), nil
}

// addDetail adds a detail line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
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

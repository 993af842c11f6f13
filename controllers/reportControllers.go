package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
)

// AddReport lets a doctor attach a medical report to a patient record.
func AddReport(c *gin.Context) {
	doctorIDVal, exists := c.Get("doctor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}
	doctorID := doctorIDVal.(uint)

	var report models.Report
	if err := c.BindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report.DoctorID = doctorID

	var patient models.Patient
	if err := configuration.DB.First(&patient, report.PatientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}

	if err := configuration.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Report added successfully",
		"data":    report,
	})
}

// GetPatientReports lists reports for a patient.
func GetPatientReports(c *gin.Context) {
	patientID := c.Param("id")

	var reports []models.Report
	if err := configuration.DB.Where("patient_id = ?", patientID).Order("created_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	if len(reports) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No reports found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Reports fetched successfully",
		"data":    reports,
	})
}

// GetDoctorReports lists the reports authored by the logged-in doctor.
func GetDoctorReports(c *gin.Context) {
	doctorIDVal, exists := c.Get("doctor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}
	doctorID := doctorIDVal.(uint)

	var reports []models.Report
	if err := configuration.DB.Where("doctor_id = ?", doctorID).Order("created_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Reports fetched successfully",
		"data":    reports,
	})
}

// UpdateReport edits an existing report. Only the authoring doctor may update it.
func UpdateReport(c *gin.Context) {
	doctorIDVal, exists := c.Get("doctor_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}
	doctorID := doctorIDVal.(uint)

	var report models.Report
	if err := configuration.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if report.DoctorID != doctorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Report belongs to another doctor"})
		return
	}

	if err := c.BindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report.DoctorID = doctorID
	if err := configuration.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Report updated successfully",
		"data":    report,
	})
}

// DeleteReport removes a report. Admin only.
func DeleteReport(c *gin.Context) {
	var report models.Report
	if err := configuration.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	if err := configuration.DB.Delete(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Report deleted successfully",
	})
}

// ExportAppointmentsCSV streams all appointments as a CSV download for admins.
func ExportAppointmentsCSV(c *gin.Context) {
	var appointments []models.Appointment
	if err := configuration.DB.Order("appointment_date").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=appointments.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	header := []string{"AppointmentID", "PatientID", "DoctorID", "Date", "TimeSlot", "ConsultationMode", "PaymentStatus", "BookingStatus"}
	if err := writer.Write(header); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
		return
	}

	for _, a := range appointments {
		row := []string{
			strconv.Itoa(a.AppointmentID),
			strconv.Itoa(a.PatientID),
			strconv.Itoa(a.DoctorID),
			a.AppointmentDate.Format("2006-01-02"),
			a.AppointmentTimeSlot,
			a.ConsultationMode,
			a.PaymentStatus,
			a.BookingStatus,
		}
		if err := writer.Write(row); err != nil {
			fmt.Println("Error writing CSV row:", err)
			return
		}
	}
}

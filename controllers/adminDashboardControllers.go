package controllers

import (
	"net/http"
	"time"

	"clinic-connect/configuration"
	"clinic-connect/models"

	"github.com/gin-gonic/gin"
)

// GetBookingStatusCounts reports total bookings plus a count per booking
// status.
func GetBookingStatusCounts(c *gin.Context) {
	var total int64
	if err := configuration.DB.Model(&models.Appointment{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch total bookings"})
		return
	}

	counts := make(map[string]int64, 3)
	for _, status := range []string{"confirmed", "completed", "cancelled"} {
		var n int64
		if err := configuration.DB.Model(&models.Appointment{}).
			Where("booking_status = ?", status).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch " + status + " bookings"})
			return
		}
		counts[status] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":            "Success",
		"Message":           "Booking details fetched successfully",
		"TotalBookings":     total,
		"ConfirmedBookings": counts["confirmed"],
		"CompletedBookings": counts["completed"],
		"CancelledBookings": counts["cancelled"],
	})
}

// bookingAggregate is one row of a grouped booking/revenue breakdown.
type bookingAggregate struct {
	BookingCount int     `json:"booking_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// GetDoctorWiseBookings breaks bookings and revenue down per doctor.
func GetDoctorWiseBookings(c *gin.Context) {
	var rows []struct {
		DoctorID int `json:"doctor_id"`
		bookingAggregate
	}

	err := configuration.DB.Table("appointments").
		Select("appointments.doctor_id, COUNT(*) as booking_count, SUM(invoices.total_amount) as total_revenue").
		Joins("INNER JOIN invoices ON appointments.appointment_id = invoices.appointment_id").
		Group("appointments.doctor_id").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor-wise data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"message":    "Doctor-wise data fetched successfully",
		"doctorData": rows,
	})
}

// GetDepartmentWiseBookings breaks bookings and revenue down per
// specialization.
func GetDepartmentWiseBookings(c *gin.Context) {
	var rows []struct {
		Specialization string `json:"specialization"`
		bookingAggregate
	}

	err := configuration.DB.Table("appointments").
		Select("doctors.specialization as specialization, COUNT(*) as booking_count, SUM(invoices.total_amount) as total_revenue").
		Joins("JOIN doctors ON appointments.doctor_id = doctors.doctor_id").
		Joins("JOIN invoices ON appointments.appointment_id = invoices.appointment_id").
		Group("doctors.specialization").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch department-wise data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        "Department-wise data fetched successfully",
		"departmentData": rows,
	})
}

// GetModeWiseBookings counts bookings per consultation mode
// (audio/chat/videoCall).
func GetModeWiseBookings(c *gin.Context) {
	var rows []struct {
		ConsultationMode string `json:"consultation_mode"`
		BookingCount     int    `json:"booking_count"`
	}

	err := configuration.DB.Table("appointments").
		Select("consultation_mode, COUNT(*) as booking_count").
		Group("consultation_mode").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mode-wise data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Consultation mode-wise data fetched successfully",
		"modeData": rows,
	})
}

// revenueBetween sums paid invoice amounts settled inside [start, end].
// The pointer is nil when no invoice matched the window.
func revenueBetween(start, end time.Time) (*float64, error) {
	var total *float64
	err := configuration.DB.Model(&models.Invoice{}).
		Select("SUM(total_amount) as total_revenue").
		Where("payment_status = ?", "Paid").
		Where("updated_at BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	return total, err
}

// GetTotalRevenue reports paid revenue for the current day, week, month
// and year.
func GetTotalRevenue(c *gin.Context) {
	now := time.Now()

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	windows := []struct {
		name       string
		start, end time.Time
	}{
		{"day", startOfDay, startOfDay.AddDate(0, 0, 1).Add(-time.Second)},
		{"week", startOfWeek, startOfWeek.AddDate(0, 0, 7).Add(-time.Second)},
		{"month", startOfMonth, startOfMonth.AddDate(0, 1, 0).Add(-time.Second)},
		{"year", startOfYear, startOfYear.AddDate(1, 0, 0).Add(-time.Second)},
	}

	revenue := make(map[string]*float64, len(windows))
	for _, w := range windows {
		total, err := revenueBetween(w.start, w.end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch revenue for the " + w.name})
			return
		}
		revenue[w.name] = total
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": "Revenue details fetched successfully",
		"Revenue": revenue,
	})
}

// GetSpecificRevenue reports paid revenue between the start_date and
// end_date query parameters (YYYY-MM-DD, both defaulting to today).
func GetSpecificRevenue(c *gin.Context) {
	parse := func(raw string) (time.Time, error) {
		if raw == "" {
			return time.Now(), nil
		}
		return time.Parse("2006-01-02", raw)
	}

	startDate, err := parse(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Error": "Invalid start date format. Use YYYY-MM-DD"})
		return
	}
	endDate, err := parse(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Error": "Invalid end date format. Use YYYY-MM-DD"})
		return
	}

	total, err := revenueBetween(startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch revenue for specific date range"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Revenue details fetched successfully",
		"Revenue": gin.H{"revenue": total},
	})
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"clinic-connect/configuration"
	"clinic-connect/models"
	"clinic-connect/schedule"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaveAvailability validates a requested availability window, checks every
// day and slot against stored records and persists one availability row
// per day with the accepted slots. Conflicting slots are skipped and
// reported, never overwritten: the first writer wins per interval. Each
// day's insert commits independently, so a storage failure keeps earlier
// days committed.
func SaveAvailability(c *gin.Context) {
	var req schedule.WriteRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	start, end, err := req.Validate()
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": verr.Error(),
				"fields":  verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// Admin callers (role "main") may address any doctor by exact,
	// case-insensitive name; doctors always write their own calendar.
	var doctor models.Doctor
	role, _ := c.Get("role")
	if role == "main" && req.FirstName != "" && req.LastName != "" {
		if err := configuration.DB.
			Where("LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)", req.FirstName, req.LastName).
			First(&doctor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No doctor with this name"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up doctor", "data": err.Error()})
			return
		}
	} else {
		doctorID, ok := c.Get("doctor_id")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Doctor not authenticated"})
			return
		}
		if err := configuration.DB.Where("doctor_id = ?", doctorID).First(&doctor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor id not found"})
			return
		}
		if doctor.Approved != "true" {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
			return
		}
	}

	// Overlap test against stored rows for the same doctor and exact day:
	// storedFrom < candidateTo AND storedTo > candidateFrom.
	check := func(d time.Time, s schedule.Slot) (bool, error) {
		var count int64
		err := configuration.DB.Model(&models.TimeSlot{}).
			Joins("JOIN availabilities ON availabilities.id = time_slots.availability_id").
			Where("availabilities.doctor_id = ? AND availabilities.start_date = ? AND availabilities.end_date = ?",
				doctor.DoctorID, d, d).
			Where("time_slots.from_time < ? AND time_slots.to_time > ?", s.ToTime, s.FromTime).
			Count(&count).Error
		return count > 0, err
	}

	plan, err := schedule.PlanDays(start, end, req.TimeSlots, check)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check availability", "data": err.Error()})
		return
	}

	created := make([]models.Availability, 0, len(plan.Days))
	for _, dp := range plan.Days {
		slots := make([]models.TimeSlot, 0, len(dp.Slots))
		for _, s := range dp.Slots {
			slots = append(slots, models.TimeSlot{FromTime: s.FromTime, ToTime: s.ToTime})
		}
		record := models.Availability{
			DoctorID:  doctor.DoctorID,
			FirstName: doctor.FirstName,
			LastName:  doctor.LastName,
			StartDate: dp.Day,
			EndDate:   dp.Day,
			IsMonthly: req.IsMonthly,
			Audio:     req.Modes.Audio,
			Chat:      req.Modes.Chat,
			VideoCall: req.Modes.VideoCall,
			Slots:     slots,
		}
		if err := configuration.DB.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":  false,
				"message":  "Failed to save availability",
				"data":     err.Error(),
				"inserted": len(created),
			})
			return
		}
		created = append(created, record)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"inserted":  len(created),
		"skipped":   len(plan.Conflicts),
		"conflicts": plan.Conflicts,
		"slots":     created,
	})
}

// GetDoctorCalendar expands every stored availability record of a doctor
// into concrete calendar events, evaluated against the current moment.
func GetDoctorCalendar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("doctor_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid doctor ID"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up doctor", "data": err.Error()})
		return
	}

	var rows []models.Availability
	if err := configuration.DB.Preload("Slots").Where("doctor_id = ?", id).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch availability", "data": err.Error()})
		return
	}

	events := schedule.Expand(toScheduleRecords(rows), time.Now())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
	})
}

func toScheduleRecords(rows []models.Availability) []schedule.Record {
	records := make([]schedule.Record, 0, len(rows))
	for _, row := range rows {
		slots := make([]schedule.Slot, 0, len(row.Slots))
		for _, s := range row.Slots {
			slots = append(slots, schedule.Slot{FromTime: s.FromTime, ToTime: s.ToTime})
		}
		records = append(records, schedule.Record{
			ID:        fmt.Sprint(row.ID),
			DoctorID:  row.DoctorID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			IsMonthly: row.IsMonthly,
			Modes:     schedule.ModeSet{Audio: row.Audio, Chat: row.Chat, VideoCall: row.VideoCall},
			Slots:     slots,
		})
	}
	return records
}

package models

import "time"

// Availability holds one day of bookable slots for a doctor. The writer
// creates one row per accepted day; rows are never updated in place.
// Doctor names are denormalized at creation time and not kept in sync.
type Availability struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	DoctorID  uint       `json:"doctor_id" gorm:"index;not null"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	StartDate time.Time  `json:"start_date" gorm:"not null"`
	EndDate   time.Time  `json:"end_date" gorm:"not null"`
	IsMonthly bool       `json:"is_monthly"`
	Audio     bool       `json:"audio"`
	Chat      bool       `json:"chat"`
	VideoCall bool       `json:"video_call"`
	Slots     []TimeSlot `json:"slots" gorm:"foreignKey:AvailabilityID"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"-"`
}

// TimeSlot is a single HH:mm interval belonging to one availability row.
type TimeSlot struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	AvailabilityID uint   `gorm:"index" json:"-"`
	FromTime       string `json:"fromTime" gorm:"size:5;not null"`
	ToTime         string `json:"toTime" gorm:"size:5;not null"`
}

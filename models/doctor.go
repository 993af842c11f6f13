package models

import "github.com/golang-jwt/jwt/v5"

type Doctor struct {
	DoctorID          uint           `gorm:"primaryKey"`
	FirstName         string         `json:"first_name" gorm:"not null" validate:"required"`
	LastName          string         `json:"last_name" gorm:"not null" validate:"required"`
	Age               int            `json:"age"`
	Gender            string         `json:"gender"`
	Specialization    string         `json:"specialization" gorm:"not null" validate:"required"`
	Experience        int            `json:"experience"`
	Email             string         `json:"email" gorm:"unique" validate:"required,email"`
	Password          string         `json:"password" gorm:"not null" validate:"required"`
	Phone             string         `json:"phone" gorm:"not null" validate:"required"`
	LicenseNumber     string         `json:"license_number" gorm:"not null" validate:"required"`
	ConsultancyCharge uint32         `json:"consultancy_charge"`
	Verified          string         `json:"verified"`
	Approved          string         `json:"approved"`
	ClinicID          uint           `json:"clinic_id" gorm:"not null"`
	Availabilities    []Availability `gorm:"foreignKey:DoctorID"`
}

type DoctorClaims struct {
	Id          uint   `json:"id"`
	DoctorEmail string `json:"email"`
	jwt.RegisteredClaims
}

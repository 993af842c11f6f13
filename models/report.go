package models

import (
	"gorm.io/gorm"
)

type Report struct {
	gorm.Model
	PatientID  uint   `json:"patient_id"`
	DoctorID   uint   `json:"doctor_id"`
	Title      string `json:"title"`
	ReportType string `json:"report_type"`
	Notes      string `json:"notes"`
	FileURL    string `json:"file_url"`
}

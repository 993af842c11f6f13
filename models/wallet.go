package models

import "time"

type Wallet struct {
	WalletID uint    `gorm:"primaryKey"`
	UserID   int     `json:"user_id" gorm:"uniqueIndex"`
	Amount   float64 `json:"amount"`
}

// Withdrawal is a doctor payout request settled through the payment gateway.
type Withdrawal struct {
	WithdrawalID uint      `gorm:"primaryKey"`
	DoctorID     uint      `json:"doctor_id" gorm:"index"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	PayoutRef    string    `json:"payout_ref"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

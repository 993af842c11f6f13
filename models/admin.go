package models

import "github.com/dgrijalva/jwt-go"

// Admin accounts live in the admin-panel database, not the app database.
type Admin struct {
	AdminID  int    `gorm:"primaryKey"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

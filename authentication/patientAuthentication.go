package authentication

import (
	"errors"
	"strings"
	"time"

	"clinic-connect/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var jwtKey = []byte("secretKey")

// Generating jwt token for patient
func GeneratePatientToken(patientID int, phone string) (string, error) {
	claims := &models.PatientClaims{
		PatientID: patientID,
		Phone:     phone,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour * 24).Unix(),
			IssuedAt:  time.Now().Unix(),
		}}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func AuthenticatePatient(signedStringToken string) (string, int, error) {
	var patientClaims models.PatientClaims
	token, err := jwt.ParseWithClaims(signedStringToken, &patientClaims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		return "", 0, err
	}
	if !token.Valid {
		return "", 0, errors.New("token is not valid")
	}
	claims, ok := token.Claims.(*models.PatientClaims)
	if !ok {
		return "", 0, errors.New("couldn't parse claims")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return "", 0, errors.New("token expired")
	}

	return claims.Phone, claims.PatientID, nil
}

func PatientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")

		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "User Authorization is missing"})
			return
		}

		authHeader := strings.Replace(tokenString, "Bearer ", "", 1)
		phone, patientID, err := AuthenticatePatient(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("patientID", patientID)
		c.Set("phone", phone)
		c.Next()
	}
}

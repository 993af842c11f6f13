package authentication

import (
	"log"
	"math/rand"
	"net/smtp"
	"os"
)

// GenerateOTP returns a numeric OTP of the given length.
func GenerateOTP(length int) string {
	characters := "0123456789"
	otp := make([]byte, length)

	for i := range otp {
		otp[i] = characters[rand.Intn(len(characters))]
	}
	return string(otp)
}

// SendOTPByEmail
func SendOTPByEmail(otp, email string) error {
	message := "Subject: Clinic Connect OTP\nHey Your OTP is " + otp

	SMTPemail := os.Getenv("Email")
	SMTPpass := os.Getenv("Password")

	auth := smtp.PlainAuth("", SMTPemail, SMTPpass, "smtp.gmail.com")

	err := smtp.SendMail("smtp.gmail.com:587", auth, SMTPemail, []string{email}, []byte(message))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}

	return nil
}

// ValidateOTP
func ValidateOTP(otp, doctorOTP string) bool {
	return otp == doctorOTP
}

package controllers

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gomail/gomail"
)

// newAttachmentMail composes a plain-text message with one attachment.
func newAttachmentMail(from, to, subject, body, attachmentName string, attachmentData []byte) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))
	return m
}

// SendAttachmentEmail delivers body plus one attachment to the recipient
// over the configured SMTP account. Invoice, due and prescription mails
// all go through here; only the subject differs.
func SendAttachmentEmail(subject, body, to, attachmentName string, attachmentData []byte) error {
	senderEmail := os.Getenv("Email")
	senderPassword := os.Getenv("Password")

	m := newAttachmentMail(senderEmail, to, subject, body, attachmentName, attachmentData)

	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

package controllers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachmentMailHeaders(t *testing.T) {
	m := newAttachmentMail("clinic@example.com", "patient@example.com",
		"Payment Confirmation mail", "Payment successful for invoice",
		"invoice.pdf", []byte("%PDF-1.4"))

	assert.Equal(t, []string{"clinic@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"patient@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Payment Confirmation mail"}, m.GetHeader("Subject"))
}

func TestNewAttachmentMailCarriesBodyAndAttachment(t *testing.T) {
	m := newAttachmentMail("clinic@example.com", "patient@example.com",
		"Prescription e-mail", "Prescription attachment",
		"prescription.pdf", []byte("%PDF-1.4"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Prescription attachment")
	assert.Contains(t, raw, "prescription.pdf")
}

func TestNewAttachmentMailSubjectVariants(t *testing.T) {
	subjects := []string{"Payment Due mail", "Payment Confirmation mail", "Prescription e-mail"}
	for _, subject := range subjects {
		m := newAttachmentMail("clinic@example.com", "patient@example.com",
			subject, "body", "file.pdf", []byte("data"))
		assert.Equal(t, []string{subject}, m.GetHeader("Subject"))
	}
}

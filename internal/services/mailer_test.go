package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendFailsClosedWhenUnconfigured(t *testing.T) {
	mailer := NewSMTPMailer("", 587, "", "")

	err := mailer.Send("user@example.com", "Test", "<p>hi</p>")
	require.ErrorIs(t, err, ErrMailerDisabled)
}

func TestSendRejectsInvalidRecipient(t *testing.T) {
	mailer := NewSMTPMailer("smtp.example.com", 587, "no-reply@example.com", "pass")

	err := mailer.Send("not-an-address", "Test", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient address")
}

func TestFormatMessage(t *testing.T) {
	msg := formatMessage("from@example.com", "to@example.com", "Subject\r\nBreak", "<p>Body</p>")

	assert.True(t, strings.Contains(msg, "From: from@example.com"))
	assert.True(t, strings.Contains(msg, "To: to@example.com"))
	assert.True(t, strings.Contains(msg, "Subject: Subject  Break"))
	assert.True(t, strings.Contains(msg, "Content-Type: text/html; charset=UTF-8"))
	assert.True(t, strings.HasSuffix(msg, "<p>Body</p>"))
}

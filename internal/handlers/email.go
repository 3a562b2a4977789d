package handlers

import (
	"log"

	"github.com/example/eventhub/internal/monitoring"
	"github.com/example/eventhub/internal/services"
)

// deliverEmail makes one delivery attempt and reports the outcome as a
// flag. Failures are logged and counted, never escalated to the caller.
func deliverEmail(mailer services.Mailer, kind, to, subject, body string) bool {
	if err := mailer.Send(to, subject, body); err != nil {
		log.Printf("[Mail] %s email to %s not sent: %v", kind, to, err)
		monitoring.RecordEmail(kind, false)
		return false
	}
	monitoring.RecordEmail(kind, true)
	return true
}

func (h *AuthHandler) sendEmail(kind, to, subject, body string) bool {
	return deliverEmail(h.mailer, kind, to, subject, body)
}

func (h *OrderHandler) sendEmail(kind, to, subject, body string) bool {
	return deliverEmail(h.mailer, kind, to, subject, body)
}

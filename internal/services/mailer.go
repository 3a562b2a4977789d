package services

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"
)

// ErrMailerDisabled signals that SMTP delivery is not configured.
var ErrMailerDisabled = errors.New("mailer: smtp not configured")

// Mailer sends a single HTML email message per call. Implementations make
// at most one delivery attempt; there is no retry or queueing.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers mail over an SMTP session secured with STARTTLS.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// NewSMTPMailer creates an SMTPMailer. Empty host/username/password are
// allowed; Send then degrades to a logged no-op error.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		timeout:  5 * time.Second,
	}
}

// Send delivers one message to a single recipient.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.host == "" || m.username == "" || m.password == "" {
		log.Println("[Mail] SMTP not configured, skipping send")
		return ErrMailerDisabled
	}

	if _, err := mail.ParseAddress(to); err != nil {
		return fmt.Errorf("mailer: invalid recipient address %q: %w", to, err)
	}

	address := fmt.Sprintf("%s:%d", m.host, m.port)
	dialer := &net.Dialer{Timeout: m.timeout}

	conn, err := dialer.Dial("tcp", address)
	if err != nil {
		log.Printf("[Mail] dial %s failed: %v", address, err)
		return fmt.Errorf("mailer: dial %s: %w", address, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("mailer: new client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("mailer: start tls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("mailer: auth: %w", err)
	}

	if err := client.Mail(m.username); err != nil {
		return fmt.Errorf("mailer: mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("mailer: rcpt to %s: %w", to, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: data command: %w", err)
	}
	if _, err := wc.Write([]byte(formatMessage(m.username, to, subject, htmlBody))); err != nil {
		_ = wc.Close()
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("mailer: close data writer: %w", err)
	}

	return client.Quit()
}

func formatMessage(from, to, subject, body string) string {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", escapeHeader(subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
	}

	return strings.Join(headers, "\r\n") + body
}

func escapeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return value
}

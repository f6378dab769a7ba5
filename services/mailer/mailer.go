package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/fierogr/findfarewells-sub000/config"
	"github.com/fierogr/findfarewells-sub000/models"
)

// Mailer sends outbound notification email.
type Mailer interface {
	SendRegistrationNotification(to string, payload models.RegistrationEmailPayload) error
}

// SMTPMailer delivers mail over plain SMTP with optional auth.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewSMTPMailer builds a mailer from the application configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}
}

// SendRegistrationNotification emails the admin mailbox about a new
// registration request. The body is Greek, matching the site's audience.
func (m *SMTPMailer) SendRegistrationNotification(to string, p models.RegistrationEmailPayload) error {
	if m.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	if to == "" {
		return fmt.Errorf("no recipient address")
	}

	subject := fmt.Sprintf("Νέα αίτηση συνεργασίας: %s", p.BusinessName)
	var body strings.Builder
	fmt.Fprintf(&body, "Καταχωρήθηκε νέα αίτηση συνεργασίας (%s).\r\n\r\n", p.RequestID)
	fmt.Fprintf(&body, "Επιχείρηση: %s\r\n", p.BusinessName)
	fmt.Fprintf(&body, "Υπεύθυνος: %s\r\n", p.OwnerName)
	fmt.Fprintf(&body, "Email: %s\r\n", p.Email)
	fmt.Fprintf(&body, "Τηλέφωνο: %s\r\n", p.Phone)
	if p.City != "" || p.State != "" {
		fmt.Fprintf(&body, "Περιοχή: %s %s\r\n", p.City, p.State)
	}
	if p.Website != "" {
		fmt.Fprintf(&body, "Ιστοσελίδα: %s\r\n", p.Website)
	}
	if p.ServicesText != "" {
		fmt.Fprintf(&body, "Υπηρεσίες: %s\r\n", p.ServicesText)
	}
	if len(p.Regions) > 0 {
		fmt.Fprintf(&body, "Νομοί εξυπηρέτησης: %s\r\n", strings.Join(p.Regions, ", "))
	}

	msg := strings.Builder{}
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body.String())

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send registration notification: %w", err)
	}
	return nil
}

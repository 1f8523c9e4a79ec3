// File: /services/email_service.go
package services

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"gopkg.in/gomail.v2"
	"motolog-api/config"
)

const verificationCodeLength = 6

// EmailService sends verification and welcome mail over SMTP.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

// NewEmailService returns an EmailService using the SMTP settings in cfg.
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// Enabled reports whether an SMTP host is configured.
func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != ""
}

// GenerateVerificationCode returns a random numeric code.
func (es *EmailService) GenerateVerificationCode() (string, error) {
	const digits = "0123456789"
	code := make([]byte, verificationCodeLength)

	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[num.Int64()]
	}

	return string(code), nil
}

func (es *EmailService) SendVerificationEmail(email, name, code string) error {
	m := es.newMessage(email, "Motolog - Email Verification")

	textBody := fmt.Sprintf(`Hello %s!

Your Motolog verification code is: %s

This code will expire in %d minutes.

If you didn't create a Motolog account, please ignore this email.
`, name, code, int(verificationTTL.Minutes()))

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Hello %s!</h2>
    <p>Your Motolog verification code is:</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
    <p><small>This code will expire in %d minutes.</small></p>
    <p>If you didn't create a Motolog account, please ignore this email.</p>
</body>
</html>`, name, code, int(verificationTTL.Minutes()))

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	return es.send(m, email)
}

func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := es.newMessage(email, "Welcome to Motolog!")
	m.SetBody("text/plain", fmt.Sprintf(`Hello %s!

Your email has been verified. You can now log services, events and modifications for your motorcycle.

Safe rides!
`, name))

	return es.send(m, email)
}

func (es *EmailService) newMessage(to, subject string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	return m
}

func (es *EmailService) send(m *gomail.Message, to string) error {
	if !es.Enabled() {
		log.Printf("SMTP not configured, skipping email to %s", to)
		return nil
	}

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s", to)
	return nil
}

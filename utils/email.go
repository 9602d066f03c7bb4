package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// SendAccessKeyEmail sends the single-use onboarding key to a prospective
// customer. Falls back to a logged mock send when SMTP is not configured,
// so local development never needs a mail server.
func SendAccessKeyEmail(recipientEmail, customerName, accessKey string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Front Desk")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s key:%s", MaskEmail(recipientEmail), accessKey)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	customerName = safe(customerName)
	accessKey = safe(accessKey)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := "Your Access Key"
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"An account has been prepared for you. Use the access key below to\n"+
			"activate it; the key works exactly once.\n\n"+
			"Access Key: %s\n\n"+
			"If you did not expect this email, you can ignore it.\n\n"+
			"Best regards,\n%s",
		customerName,
		accessKey,
		fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("failed to send access key email to %s: %v", MaskEmail(recipientEmail), err)
		return err
	}

	log.Printf("access key email sent to %s", MaskEmail(recipientEmail))
	return nil
}

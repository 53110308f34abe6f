package services

import (
	"fmt"
	"net/smtp"
	"os"
)

// SMTPSender mails the operator inbox when an order lands in moderation.
// It satisfies the Notifier interface consumed by OrderService.
type SMTPSender struct {
	Host     string
	Port     string
	From     string
	Password string
	Operator string
}

// NewSMTPSenderFromEnv reads SMTP settings from the environment
// (SMTP_HOST, SMTP_PORT, SMTP_FROM, SMTP_PASSWORD, OPERATOR_EMAIL).
func NewSMTPSenderFromEnv() *SMTPSender {
	return &SMTPSender{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		From:     os.Getenv("SMTP_FROM"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Operator: os.Getenv("OPERATOR_EMAIL"),
	}
}

func (s *SMTPSender) SendEmail(orderID uint) error {
	if s.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Order #%d needs moderation\r\n\r\n"+
			"Automatic cleaner assignment failed for order #%d. Please assign cleaners manually.\r\n",
		s.From, s.Operator, orderID, orderID)

	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)
	addr := s.Host + ":" + s.Port
	return smtp.SendMail(addr, auth, s.From, []string{s.Operator}, []byte(msg))
}

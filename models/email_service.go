package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

// NewEmailService builds a mailer from SMTP_* environment variables. Callers
// treat a missing configuration as "no mailer" and skip sending.
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderConfirmation mails the order-confirmation template from the store
// settings to the customer, and a copy to the admin address when enabled.
func (s *EmailService) SendOrderConfirmation(order AdminOrder, settings StoreSettings) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - %s", order.ID, settings.General.StoreName))

	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>%s</p><p>Order %s, total %s%.2f.</p>",
		order.CustomerName,
		settings.Email.OrderConfirmationTemplate,
		order.ID,
		settings.General.CurrencySymbol,
		order.Total,
	)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}

	if settings.Email.AdminNotificationEnabled && settings.Email.AdminEmail != "" {
		n := gomail.NewMessage()
		n.SetHeader("From", os.Getenv("SMTP_FROM"))
		n.SetHeader("To", settings.Email.AdminEmail)
		n.SetHeader("Subject", fmt.Sprintf("New order %s", order.ID))
		n.SetBody("text/html", fmt.Sprintf(
			"<p>Order %s from %s (%s), total %s%.2f.</p>",
			order.ID, order.CustomerName, order.CustomerEmail,
			settings.General.CurrencySymbol, order.Total,
		))
		return s.dialer.DialAndSend(n)
	}

	return nil
}

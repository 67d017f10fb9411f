// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendFeatureGranted(toEmail, schoolName, featureName string) error
	SendSchoolWelcome(toEmail, schoolName, subdomain string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendFeatureGranted(toEmail, schoolName, featureName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New feature enabled: %s", featureName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s just got a new feature</h2>
			<p><strong>%s</strong> is now available to your staff.</p>
			<p>It will appear in the school menu the next time staff members sign in or refresh.</p>
			<p><a href="%s">Open SchoolHub</a></p>
		</div>
	`, schoolName, featureName, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send feature notice to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}

func (s *emailService) SendSchoolWelcome(toEmail, schoolName, subdomain string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to SchoolHub")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s!</h2>
			<p>Your school space is ready at <strong>%s.schoolhub.app</strong>.</p>
			<p>Sign in with your admin account to configure your staff and menus.</p>
			<p><a href="%s">Open SchoolHub</a></p>
		</div>
	`, schoolName, subdomain, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}

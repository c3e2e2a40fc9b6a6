// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRoadmap(toEmail, goal string, pdfBytes []byte) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendRoadmap(toEmail, goal string, pdfBytes []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Career Roadmap")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your roadmap is ready!</h2>
			<p>We generated a step-by-step career roadmap for your goal:</p>
			<p style="font-weight: bold;">%s</p>
			<p>The full roadmap is attached as a PDF.</p>
		</div>
	`, goal)

	m.SetBody("text/html", body)
	m.Attach("career-roadmap.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdfBytes))
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send roadmap to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Roadmap sent to %s\n", toEmail)
	return nil
}

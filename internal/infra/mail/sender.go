package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendOutreach envía un mensaje de nutrición ya generado. El cuerpo llega en
// texto plano desde el generador de copy, sin plantilla HTML.
func (s *EmailSender) SendOutreach(to, asunto, cuerpo string) error {
	if asunto == "" {
		asunto = "Ideas para mejorar tu flujo de trabajo comercial"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", asunto)
	m.SetBody("text/plain", cuerpo)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar email SMTP: %w", err)
	}

	return nil
}

package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPProvider{
		config:   config,
		dialer:   dialer,
		renderer: renderer,
	}, nil
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		if email.Body != "" {
			m.SetBody("text/plain", email.Body)
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

// SendTemplate отправляет email по шаблону
func (p *SMTPProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

// SendVerification отправляет письмо подтверждения email
func (p *SMTPProvider) SendVerification(email string, token string) error {
	data := TemplateData{
		"VerifyURL": fmt.Sprintf("%s/verify-email?token=%s", p.config.FrontendBaseURL, token),
	}
	return p.SendTemplate([]string{email}, "Подтверждение email", TemplateVerifyEmail, data)
}

// SendPasswordReset отправляет письмо для сброса пароля
func (p *SMTPProvider) SendPasswordReset(email string, token string) error {
	data := TemplateData{
		"ResetURL": fmt.Sprintf("%s/reset-password?token=%s", p.config.FrontendBaseURL, token),
	}
	return p.SendTemplate([]string{email}, "Сброс пароля", TemplatePasswordReset, data)
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}

// Close закрывает соединение (для SMTP с gomail не требуется)
func (p *SMTPProvider) Close() error {
	return nil
}

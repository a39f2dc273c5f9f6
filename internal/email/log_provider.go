package email

import (
	"jobboard_backend/internal/logger"
)

// LogProvider пишет письма в лог вместо отправки.
// Используется, когда SMTP не сконфигурирован (локальная разработка, тесты).
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("Email (log only)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	logger.Info("Email (log only)", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *LogProvider) SendVerification(email string, token string) error {
	logger.Info("Verification email (log only)", "to", email, "token", token)
	return nil
}

func (p *LogProvider) SendPasswordReset(email string, token string) error {
	logger.Info("Password reset email (log only)", "to", email, "token", token)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

func (p *LogProvider) Close() error { return nil }

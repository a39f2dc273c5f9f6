package services

import (
	"sync"

	"jobboard_backend/internal/email"
)

// recordingEmailProvider собирает отправленные письма. Потокобезопасен,
// т.к. сервисы шлют письма из горутин.
type recordingEmailProvider struct {
	mu             sync.Mutex
	verifications  []string
	passwordResets []string
}

func (p *recordingEmailProvider) Send(e *email.Email) error { return nil }

func (p *recordingEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return nil
}

func (p *recordingEmailProvider) SendVerification(emailAddr, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verifications = append(p.verifications, emailAddr)
	return nil
}

func (p *recordingEmailProvider) SendPasswordReset(emailAddr, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.passwordResets = append(p.passwordResets, emailAddr)
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }
func (p *recordingEmailProvider) Close() error    { return nil }

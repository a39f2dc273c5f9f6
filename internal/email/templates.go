package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Имена встроенных шаблонов
const (
	TemplateVerifyEmail   = "verify_email"
	TemplatePasswordReset = "password_reset"
)

var defaultTemplates = map[string]string{
	TemplateVerifyEmail: `
<h2>Подтвердите ваш email</h2>
<p>Здравствуйте{{if .Name}}, {{.Name}}{{end}}!</p>
<p>Чтобы завершить регистрацию, перейдите по ссылке:</p>
<p><a href="{{.VerifyURL}}">Подтвердить email</a></p>
<p>Если вы не регистрировались, просто проигнорируйте это письмо.</p>
`,
	TemplatePasswordReset: `
<h2>Сброс пароля</h2>
<p>Вы запросили сброс пароля. Перейдите по ссылке, чтобы задать новый:</p>
<p><a href="{{.ResetURL}}">Сбросить пароль</a></p>
<p>Ссылка действительна один час. Если вы не запрашивали сброс, проигнорируйте это письмо.</p>
`,
}

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range defaultTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

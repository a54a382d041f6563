// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sendgrid/sendgrid-go"

	"github.com/fleetdesk/fleetdesk/internal/config"
)

// EmailData contains all necessary information for sending an email
type EmailData struct {
	To           string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service handles email operations
type Service struct {
	config         *config.Config
	sendgridClient *sendgrid.Client
	templates      map[string]*template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.Config) (*Service, error) {
	s := &Service{
		config:         cfg,
		sendgridClient: sendgrid.NewSendClient(cfg.Sendgrid.APIKey),
		templates:      make(map[string]*template.Template),
	}

	for name, text := range templateSources {
		tmpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parsing email template %q: %w", name, err)
		}
		s.templates[name] = tmpl
	}

	return s, nil
}

// Send renders the named template and delivers it via Sendgrid.
func (s *Service) Send(data EmailData) error {
	tmpl, ok := s.templates[data.TemplateName]
	if !ok {
		return fmt.Errorf("unknown email template %q", data.TemplateName)
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data.TemplateData); err != nil {
		return fmt.Errorf("rendering email template: %w", err)
	}

	return s.sendWithSendgrid(data, html.String())
}

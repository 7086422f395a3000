package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendLeadDigest envia o resumo dos leads recém-sincronizados pro time de vendas
func (s *EmailSender) SendLeadDigest(to string, leads []*entity.Lead) error {
	data := LeadDigestData{
		Count: len(leads),
		Leads: leads,
	}

	tmplPath := filepath.Join("templates", "lead_digest.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@liguemedicina.com")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🎯 %d novo(s) lead(s) verificado(s) no CRM", len(leads)))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

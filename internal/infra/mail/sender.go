package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/grautech/leadpipe/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// From e SalesInbox configurados uma vez no boot.
	From       string
	SalesInbox string
}

func NewEmailSender(host string, port int, user, password, from, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

var newLeadTmpl = template.Must(template.New("new_lead").Parse(
	`<h2>Novo lead no pipeline 🚀</h2>
<p><strong>{{.Name}}</strong>{{if .Email}} &lt;{{.Email}}&gt;{{end}}</p>
<p>Origem: {{.Source}} ({{.Origin}})</p>
<p>Entrou no estágio: {{.NewStatus}}</p>`))

var meetingTmpl = template.Must(template.New("meeting").Parse(
	`<h2>Reunião marcada 📅</h2>
<p><strong>{{.Name}}</strong>{{if .Email}} &lt;{{.Email}}&gt;{{end}}</p>
<p>Data: {{.MeetingDate}}{{if .MeetingTime}} às {{.MeetingTime}}{{end}}</p>`))

func (s *EmailSender) NotifyNewLead(event queue.LeadEvent) error {
	subject := fmt.Sprintf("Novo lead: %s", event.Name)
	return s.send(subject, newLeadTmpl, event)
}

func (s *EmailSender) NotifyMeetingScheduled(event queue.LeadEvent) error {
	subject := fmt.Sprintf("Reunião marcada: %s", event.Name)
	return s.send(subject, meetingTmpl, event)
}

func (s *EmailSender) send(subject string, tmpl *template.Template, event queue.LeadEvent) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

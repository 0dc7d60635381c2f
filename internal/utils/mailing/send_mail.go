package mailing

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"agrifusion/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func (c MailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.SMTPEmail != ""
}

type Mailer struct {
	cfg MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`<p>Hi {{.Name}},</p>
<p>Your AgriFusion account <b>{{.Username}}</b> is ready.</p>
<p>Record soil tests, track your income and expenses and keep crop photos at <a href="{{.AppURL}}">{{.AppURL}}</a>.</p>`))

func (m *Mailer) SendWelcome(toEmail, name, username string) error {
	if name == "" {
		name = username
	}
	var body bytes.Buffer
	err := welcomeTemplate.Execute(&body, map[string]string{
		"Name":     name,
		"Username": username,
		"AppURL":   m.cfg.AppURL,
	})
	if err != nil {
		return fmt.Errorf("rendering welcome mail: %w", err)
	}
	return m.SendMail(toEmail, "Welcome to AgriFusion", body.String())
}

func (m *Mailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	if m.cfg.SMTPSender != "" {
		mailer.SetAddressHeader("From", m.cfg.SMTPEmail, m.cfg.SMTPSender)
	} else {
		mailer.SetHeader("From", m.cfg.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", m.cfg.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		m.cfg.SMTPHost,
		port,
		m.cfg.SMTPEmail,
		m.cfg.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"gallery-app/internal/domain/inquiry"
)

type Config struct {
	Host     string
	Port     string
	From     string
	Password string
	To       string
}

func (c Config) Enabled() bool {
	return c.Host != "" && c.From != "" && c.To != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends the gallery a short mail for every new inquiry.
type Mailer struct {
	cfg  Config
	send sendFunc
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

func (m *Mailer) NotifyInquiry(ctx context.Context, cr inquiry.ContactRequest) error {
	const op = "mailer.NotifyInquiry"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	msg := buildMessage(m.cfg.From, m.cfg.To, cr)

	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func buildMessage(from, to string, cr inquiry.ContactRequest) []byte {
	subject := "Nouvelle demande d'information"
	if cr.PaintingName != nil {
		subject += " : " + *cr.PaintingName
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Référence : %s\n", cr.Reference)
	fmt.Fprintf(&body, "Nom : %s\n", cr.Name)
	fmt.Fprintf(&body, "Email : %s\n", cr.Email)
	fmt.Fprintf(&body, "Téléphone : %s\n", cr.Phone)
	if cr.PaintingIDs != "" {
		fmt.Fprintf(&body, "Œuvres : %s\n", cr.PaintingIDs)
	}
	fmt.Fprintf(&body, "\n%s\n", cr.Message)

	return []byte("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body.String() + "\r\n")
}

package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Message is a single outbound email. Attachment is optional.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Sender delivers mail over SMTP with STARTTLS, the way the usual
// consumer providers (Outlook, Gmail) expect.
type Sender struct {
	Host     string
	Port     int
	From     string
	Password string

	// sendMail is swappable for tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSender(host string, port int, from, password string) (*Sender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, errors.New("smtp host is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, errors.New("smtp from address is required")
	}
	if port <= 0 {
		port = 587
	}
	return &Sender{
		Host:     host,
		Port:     port,
		From:     from,
		Password: password,
		sendMail: smtp.SendMail,
	}, nil
}

// Send delivers the message. The context is honored only before the dial;
// net/smtp has no per-operation cancellation.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return errors.New("recipient is required")
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)
	payload := buildMIME(s.From, to, msg)
	if err := s.sendMail(addr, auth, s.From, []string{to}, payload); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// SendApplicationConfirmation emails the user after an application is recorded.
func (s *Sender) SendApplicationConfirmation(ctx context.Context, to, jobTitle, companyName string) error {
	subject := fmt.Sprintf("Application sent – %s at %s", jobTitle, companyName)
	body := fmt.Sprintf(
		"Your application for %s at %s has been recorded.\n\nYou can track its status from your applications page.\n",
		jobTitle, companyName,
	)
	return s.Send(ctx, Message{To: to, Subject: subject, Body: body})
}

const mimeBoundary = "careerhub-mail-boundary"

func buildMIME(from, to string, msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachment) == 0 {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(msg.Body)
		b.WriteString("\r\n")
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mimeBoundary)
	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	fmt.Fprintf(&b, "Content-Type: application/octet-stream; name=%q\r\n", msg.AttachmentName)
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", msg.AttachmentName)

	encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)
	return []byte(b.String())
}

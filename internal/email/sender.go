package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Praveenkumar07007/BlogApp/internal/config"
)

// Sender delivers blog-created notifications over SMTP with STARTTLS.
type Sender struct {
	cfg config.SMTPConfig
}

// NewSender returns a Sender, or nil if SMTP is not configured.
func NewSender(cfg config.SMTPConfig) *Sender {
	if !cfg.Enabled() {
		return nil
	}
	return &Sender{cfg: cfg}
}

// SendBlogCreated emails the blog author about their new post.
func (s *Sender) SendBlogCreated(title, description, recipient string) error {
	msg := buildMessage(s.cfg.Email, recipient, title, description)
	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Email, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(addr, auth, s.cfg.Email, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}

func buildMessage(from, to, title, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: New Blog Created: %s\r\n", title)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Hi,\r\n\r\nA new blog has been created:\r\n\r\nTitle: %s\r\nDescription: %s\r\n\r\nRegards,\r\nBlog API\r\n", title, description)
	return b.String()
}

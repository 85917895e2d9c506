package email

import (
	"bytes"
	"event-ticket/common/constant"
	"fmt"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"html/template"
	"net/smtp"
	"strings"
)

type EmailOutbound struct {
	Cfg       *viper.Viper
	auth      smtp.Auth
	addr      string
	email     string
	templates map[string]*template.Template
}

func (out *EmailOutbound) Init() error {
	out.email = out.Cfg.GetString("email.user")
	out.addr = fmt.Sprintf("%s:%d", out.Cfg.GetString("email.host"), out.Cfg.GetInt("email.port"))
	out.auth = smtp.CRAMMD5Auth(out.Cfg.GetString("email.user"), out.Cfg.GetString("email.password"))

	return out.parseTemplates()
}

func (out *EmailOutbound) parseTemplates() error {
	idrPrinter := message.NewPrinter(language.Indonesian)
	funcs := template.FuncMap{
		"idr": func(v any) string {
			return idrPrinter.Sprintf("Rp%d", toInt64(v))
		},
	}

	out.templates = make(map[string]*template.Template, len(constant.EmailTemplates))
	for name, text := range constant.EmailTemplates {
		tmpl, err := template.New(name).Funcs(funcs).Parse(text)
		if err != nil {
			return fmt.Errorf("parse email template %s: %w", name, err)
		}
		out.templates[name] = tmpl
	}

	return nil
}

// Render executes the named template against data. Unknown names are an error.
func (out *EmailOutbound) Render(name string, data map[string]any) (string, error) {
	tmpl, ok := out.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}

	return buf.String(), nil
}

func (out *EmailOutbound) Send(to []string, subject string, body string) error {
	message := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		out.email,
		strings.Join(to, ","),
		subject,
		body,
	))

	err := smtp.SendMail(out.addr, out.auth, out.email, to, message)
	if err != nil {
		return err
	}

	return nil
}

// JSON numbers arrive as float64 once they pass through the queue.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

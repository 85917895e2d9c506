package contract

//go:generate mockgen -source=email.go -destination=mocks/email.go -package=mocks

type Mailer interface {
	Render(name string, data map[string]any) (string, error)
	Send(to []string, subject string, body string) error
}

package domain

import "context"

type EnrollmentMail struct {
	Recipient string
	Subject   string
	Body      string
}

type MailerPort interface {
	Send(ctx context.Context, mail EnrollmentMail) error
}

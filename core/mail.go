package core

import "net/mail"

type (
	EmailMessage struct {
		To      []mail.Address
		Subject string
		Body    string
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

func (msg EmailMessage) HasRecipients() bool { return len(msg.To) > 0 }

func (msg EmailMessage) HasContent() bool { return msg.Subject != "" || msg.Body != "" }

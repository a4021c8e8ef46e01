package notifier

import (
	"fmt"
	"net/smtp"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
)

// MailNotifier sends confirmation emails through a plain SMTP relay.
type MailNotifier struct {
	addr string
	from string
}

func NewMailNotifier(addr, from string) *MailNotifier {
	return &MailNotifier{addr: addr, from: from}
}

func (n *MailNotifier) NotifyRegistration(recipient string, reg models.Registration, event models.Event) error {
	if n.addr == "" {
		return fmt.Errorf("smtp address is empty")
	}

	body := ConfirmationMessage(reg, event)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Event Registration Confirmation\r\n\r\n%s\r\n",
		n.from, recipient, body)

	if err := smtp.SendMail(n.addr, nil, n.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}
	return nil
}

package notifier

import (
	"fmt"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
)

// Notifier delivers a registration confirmation to one recipient.
type Notifier interface {
	NotifyRegistration(recipient string, reg models.Registration, event models.Event) error
}

// ConfirmationMessage is the text sent to both the registrant and, when
// enabled, the admin.
func ConfirmationMessage(reg models.Registration, event models.Event) string {
	return fmt.Sprintf("Dear %s,\n\nYou have successfully registered for the event:\nEvent Name: %s\nCategory: %s\nEvent Date: %s\n\nThank you for registering.",
		reg.FullName,
		event.Name,
		event.Category,
		event.EventDate.Format("02 Jan 2006"),
	)
}

// Fanout sends through every configured channel; the first failure wins.
type Fanout []Notifier

func (f Fanout) NotifyRegistration(recipient string, reg models.Registration, event models.Event) error {
	for _, n := range f {
		if err := n.NotifyRegistration(recipient, reg, event); err != nil {
			return err
		}
	}
	return nil
}

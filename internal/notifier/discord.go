package notifier

import (
	"fmt"
	"log"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier posts registration confirmations to a channel, used as
// an extra admin-facing feed alongside email.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyRegistration(recipient string, reg models.Registration, event models.Event) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🎉 **New Registration**\n**Name:** %s\n**Email:** %s\n**Event:** %s (%s)\n**Event Date:** %s\n**College:** %s\n**Department:** %s",
		reg.FullName,
		recipient,
		event.Name,
		event.Category,
		event.EventDate.Format("2006-01-02"),
		reg.CollegeName,
		reg.Department,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

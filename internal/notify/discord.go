package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
)

// Config holds configuration for the Discord notifier
type Config struct {
	// Token is the Discord bot token
	Token string

	// ChannelID is the channel receiving the announcements
	ChannelID string
}

// discordNotifier implements the Notifier interface using a Discord bot
type discordNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscord creates a new Discord notifier
func NewDiscord(cfg *Config) (*discordNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &discordNotifier{
		session:   session,
		channelID: cfg.ChannelID,
	}, nil
}

// SessionLogged posts a short summary of the new session to the channel
func (n *discordNotifier) SessionLogged(ctx context.Context, session *models.Session) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}

	objectives := session.Objectives
	if objectives == "" {
		objectives = "—"
	}

	msg := fmt.Sprintf("🥋 Nouvelle séance — %s | %s | %s | %d min | %d judokas | RPE %d",
		session.Date.Format("02/01/2006"),
		session.Public,
		objectives,
		session.DurationMin,
		session.Headcount,
		session.RPE,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, msg)
	if err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}

	return nil
}

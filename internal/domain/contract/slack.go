package contract

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack.go -package=mocks

import (
	"context"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// AuthTestContext checks the bot token against the Slack API
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
}

// Notifier delivers a text message to a channel
type Notifier interface {
	Send(ctx context.Context, channelID, text string, policy domain.MentionPolicy) error
}

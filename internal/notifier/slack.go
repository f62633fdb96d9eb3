package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/internal/logger"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// broadcastEscaper neutralizes the special mentions that notify a whole
// channel or workspace.
var broadcastEscaper = strings.NewReplacer(
	"<!everyone", "&lt;!everyone",
	"<!channel", "&lt;!channel",
	"<!here", "&lt;!here",
	"<!subteam", "&lt;!subteam",
)

// Slack posts alarm notifications with chat.postMessage.
type Slack struct {
	client  contract.SlackClient
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewSlack returns a Notifier allowing at most ratePerSec messages per
// second. A non-positive rate disables limiting.
func NewSlack(client contract.SlackClient, ratePerSec float64, log zerolog.Logger) *Slack {
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}

	return &Slack{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		log:     logger.Component(log, "slack"),
	}
}

func (n *Slack) Send(ctx context.Context, channelID, text string, policy domain.MentionPolicy) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for send slot: %w", err)
	}

	if policy != domain.MentionEveryone {
		text = broadcastEscaper.Replace(text)
	}

	_, ts, err := n.client.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message to %s: %w", channelID, err)
	}

	n.log.Debug().Str("channel_id", channelID).Str("ts", ts).Msg("message posted")
	return nil
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-alarm-bot/internal/domain/slack"
	"github.com/diegoclair/slack-alarm-bot/internal/logger"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	alarmService  contract.AlarmService
	signingSecret string
	log           zerolog.Logger
}

func New(slackClient contract.SlackClient, alarmService contract.AlarmService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		alarmService:  alarmService,
		signingSecret: signingSecret,
		log:           logger.Component(log, "http"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("rejected request with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.serviceError(err))
		return
	}

	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

// HandleHealth reports that the process is up.
func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdIn:
		return h.handleIn(ctx, cmd, slashCmd)
	case slackcmd.CmdAt:
		return h.handleAt(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(ctx, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(ctx, cmd, slashCmd)
	case slackcmd.CmdDaily:
		return h.handleDaily(ctx, cmd, slashCmd)
	case slackcmd.CmdDailyOff:
		return h.handleDailyOff(ctx, cmd, slashCmd)
	case slackcmd.CmdDailyList:
		return h.handleDailyList(ctx, slashCmd)
	case slackcmd.CmdPing:
		return h.handlePing(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command, try `/alarm help`")
	}
}

func (h *SlackHandler) handleIn(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	conf, err := h.alarmService.RegisterRelative(ctx, slashCmd.TeamID, slashCmd.ChannelID, slashCmd.UserID, cmd.Minutes, cmd.Message)
	if err != nil {
		return h.serviceError(err)
	}
	return h.alarmSet(conf)
}

func (h *SlackHandler) handleAt(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	conf, err := h.alarmService.RegisterAbsolute(ctx, slashCmd.TeamID, slashCmd.ChannelID, slashCmd.UserID, cmd.When, cmd.Message)
	if err != nil {
		return h.serviceError(err)
	}
	return h.alarmSet(conf)
}

func (h *SlackHandler) alarmSet(conf *entity.Confirmation) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("✅ Alarm `#%d` set for *%s (%s)*",
			conf.ID, conf.LocalTime.Format(domain.DisplayLayout), h.alarmService.Location()),
	}
}

func (h *SlackHandler) handleList(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	alarms, err := h.alarmService.ListPending(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError(err)
	}

	if len(alarms) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You have no pending alarms. Use `/alarm in 10 stretch` to add one.",
		}
	}

	var list strings.Builder
	fmt.Fprintf(&list, "*Pending alarms (%s):*\n", h.alarmService.Location())
	for _, a := range alarms {
		fmt.Fprintf(&list, "`#%d`  %s  - %s\n", a.ID, a.LocalTime.Format(domain.DisplayLayout), a.Message)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimSuffix(list.String(), "\n"),
	}
}

func (h *SlackHandler) handleCancel(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	changed, err := h.alarmService.Cancel(ctx, slashCmd.TeamID, slashCmd.UserID, cmd.ID)
	if err != nil {
		return h.serviceError(err)
	}

	if !changed {
		return h.createErrorResponse(fmt.Sprintf("No pending alarm `#%d` to cancel", cmd.ID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Alarm `#%d` cancelled.", cmd.ID),
	}
}

func (h *SlackHandler) handleDaily(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.PingEveryone {
		allowed, err := h.canMentionEveryone(ctx, slashCmd.UserID)
		if err != nil {
			h.log.Error().Err(err).Str("user_id", slashCmd.UserID).Msg("failed to check user permissions")
			return h.createErrorResponse("Could not verify your permissions, please try again later")
		}
		if !allowed {
			return h.createErrorResponse("Only workspace admins can use `--everyone`")
		}
	}

	conf, err := h.alarmService.RegisterRecurring(ctx, slashCmd.TeamID, slashCmd.ChannelID, slashCmd.UserID,
		cmd.Hour, cmd.Minute, cmd.Message, cmd.PingEveryone)
	if err != nil {
		return h.serviceError(err)
	}

	text := fmt.Sprintf("✅ Daily alarm `#%d` set for *%s (%s)* every day, starting %s",
		conf.ID, domain.FormatTimeOfDay(conf.Hour, conf.Minute), h.alarmService.Location(), conf.FirstLocalDate)
	if conf.PingEveryone {
		text += ", mentioning everyone"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) canMentionEveryone(ctx context.Context, userID string) (bool, error) {
	user, err := h.slackClient.GetUserInfoContext(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get user info from Slack: %w", err)
	}
	return user.IsAdmin || user.IsOwner || user.IsPrimaryOwner, nil
}

func (h *SlackHandler) handleDailyOff(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	at := domain.FormatTimeOfDay(cmd.Hour, cmd.Minute)

	changed, err := h.alarmService.DisableRecurring(ctx, slashCmd.TeamID, slashCmd.ChannelID, slashCmd.UserID, cmd.Hour, cmd.Minute)
	if err != nil {
		return h.serviceError(err)
	}

	if !changed {
		return h.createErrorResponse(fmt.Sprintf("No active daily alarm at %s in this channel", at))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Daily alarms at %s turned off.", at),
	}
}

func (h *SlackHandler) handleDailyList(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	alarms, err := h.alarmService.ListRecurring(ctx, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		return h.serviceError(err)
	}

	if len(alarms) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You have no daily alarms. Use `/alarm daily 09:00 standup` to add one.",
		}
	}

	var list strings.Builder
	fmt.Fprintf(&list, "*Daily alarms (%s):*\n", h.alarmService.Location())
	for _, a := range alarms {
		fmt.Fprintf(&list, "`#%d`  %s  <#%s>  - %s", a.ID, domain.FormatTimeOfDay(a.Hour, a.Minute), a.ChannelID, a.Message)
		if a.PingEveryone {
			list.WriteString("  (everyone)")
		}
		if !a.Enabled {
			list.WriteString("  _off_")
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimSuffix(list.String(), "\n"),
	}
}

func (h *SlackHandler) handlePing(ctx context.Context) *slack.Msg {
	start := time.Now()
	if _, err := h.slackClient.AuthTestContext(ctx); err != nil {
		h.log.Error().Err(err).Msg("slack auth test failed")
		return h.createErrorResponse("Slack is not reachable right now")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🏓 Pong! %dms", time.Since(start).Milliseconds()),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError shows validation errors to the user and hides everything else.
func (h *SlackHandler) serviceError(err error) *slack.Msg {
	if domain.IsValidation(err) {
		return h.createErrorResponse(domain.ErrorDescription(err))
	}

	h.log.Error().Err(err).Str("code", string(domain.ErrorCode(err))).Msg("command failed")
	return h.createErrorResponse("Something went wrong, please try again later")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error().Err(err).Msg("failed to write response")
	}
}

package slack

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/diegoclair/slack-alarm-bot/internal/domain"
)

type CommandType string

const (
	CmdIn        CommandType = "in"
	CmdAt        CommandType = "at"
	CmdList      CommandType = "list"
	CmdCancel    CommandType = "cancel"
	CmdDaily     CommandType = "daily"
	CmdDailyOff  CommandType = "daily-off"
	CmdDailyList CommandType = "daily-list"
	CmdPing      CommandType = "ping"
	CmdHelp      CommandType = "help"
)

// EveryoneFlag asks a daily alarm to mention the whole channel.
const EveryoneFlag = "--everyone"

// Command is a parsed /alarm invocation. Only the fields relevant to Type
// are set.
type Command struct {
	Type CommandType
	Raw  string

	Minutes      int
	When         string
	ID           int64
	Hour         int
	Minute       int
	Message      string
	PingEveryone bool
}

func ParseCommand(text string) (*Command, error) {
	fields, rest := splitArgs(text, 1)
	if len(fields) == 0 {
		return &Command{Type: CmdHelp, Raw: text}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(fields[0]) {
	case "in":
		cmd.Type = CmdIn
		args, message := splitArgs(rest, 1)
		if len(args) == 0 || message == "" {
			return nil, usage("/alarm in <minutes> <message>")
		}
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, domain.Errorf(domain.ErrInvalid, "%q is not a number of minutes", args[0])
		}
		cmd.Minutes = minutes
		cmd.Message = message
	case "at":
		cmd.Type = CmdAt
		args, message := splitArgs(rest, 2)
		if len(args) < 2 || message == "" {
			return nil, usage("/alarm at <YYYY-MM-DD> <HH:MM> <message>")
		}
		cmd.When = args[0] + " " + args[1]
		cmd.Message = message
	case "list", "ls":
		cmd.Type = CmdList
	case "cancel", "rm":
		cmd.Type = CmdCancel
		args, _ := splitArgs(rest, 1)
		if len(args) == 0 {
			return nil, usage("/alarm cancel <id>")
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
		if err != nil || id <= 0 {
			return nil, domain.Errorf(domain.ErrInvalid, "%q is not an alarm id, see `/alarm list`", args[0])
		}
		cmd.ID = id
	case "daily":
		cmd.Type = CmdDaily
		args, message := splitArgs(rest, 1)
		if len(args) == 0 {
			return nil, usage("/alarm daily <HH:MM> [--everyone] <message>")
		}
		hour, minute, err := domain.ParseTimeOfDay(args[0])
		if err != nil {
			return nil, err
		}
		if flag, remainder := splitArgs(message, 1); len(flag) == 1 && strings.EqualFold(flag[0], EveryoneFlag) {
			cmd.PingEveryone = true
			message = remainder
		}
		if message == "" {
			return nil, usage("/alarm daily <HH:MM> [--everyone] <message>")
		}
		cmd.Hour, cmd.Minute, cmd.Message = hour, minute, message
	case "daily-off":
		cmd.Type = CmdDailyOff
		args, _ := splitArgs(rest, 1)
		if len(args) == 0 {
			return nil, usage("/alarm daily-off <HH:MM>")
		}
		hour, minute, err := domain.ParseTimeOfDay(args[0])
		if err != nil {
			return nil, err
		}
		cmd.Hour, cmd.Minute = hour, minute
	case "daily-list":
		cmd.Type = CmdDailyList
	case "ping":
		cmd.Type = CmdPing
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, domain.Errorf(domain.ErrInvalid, "unknown command: %s, try `/alarm help`", fields[0])
	}

	return cmd, nil
}

// splitArgs returns the first n whitespace separated fields of s and the
// trimmed remainder, keeping the remainder's inner spacing intact.
func splitArgs(s string, n int) ([]string, string) {
	var fields []string
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	for len(fields) < n && s != "" {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			fields = append(fields, s)
			s = ""
			break
		}
		fields = append(fields, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	return fields, strings.TrimSpace(s)
}

func usage(syntax string) error {
	return domain.Errorf(domain.ErrInvalid, "usage: `%s`", syntax)
}

func GetHelpText() string {
	return `*Available Commands:*

*One-time alarms:*
• ` + "`/alarm in MINUTES MESSAGE`" + ` - Alarm in N minutes (ex: ` + "`/alarm in 10 stretch`" + `)
• ` + "`/alarm at YYYY-MM-DD HH:MM MESSAGE`" + ` - Alarm at a local date and time (ex: ` + "`/alarm at 2025-10-17 15:30 demo`" + `)
• ` + "`/alarm list`" + ` - List your pending alarms
• ` + "`/alarm cancel ID`" + ` - Cancel a pending alarm (IDs are shown by list)

*Daily alarms:*
• ` + "`/alarm daily HH:MM MESSAGE`" + ` - Alarm every day at HH:MM (also: morning, noon, evening, midnight)
• ` + "`/alarm daily HH:MM --everyone MESSAGE`" + ` - Same, mentioning the whole channel (workspace admins only)
• ` + "`/alarm daily-off HH:MM`" + ` - Stop your daily alarms at HH:MM in this channel
• ` + "`/alarm daily-list`" + ` - List your daily alarms

*Other:*
• ` + "`/alarm ping`" + ` - Check the bot's connection to Slack
• ` + "`/alarm help`" + ` - Show this message`
}

package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// CronLogger adapts zerolog to the robfig/cron Logger interface. Cron's info
// messages are chatty (one per wake-up) so they go out at debug level.
type CronLogger struct {
	log zerolog.Logger
}

func NewCronLogger(log zerolog.Logger) CronLogger {
	return CronLogger{log: log}
}

func (l CronLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

func (l CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error().Err(err), keysAndValues).Msg(msg)
}

func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		e = e.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	return e
}

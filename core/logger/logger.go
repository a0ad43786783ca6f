package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init reconfigures the global logger. level is one of debug, info, warn,
// error; pretty switches to the human-readable console writer.
func Init(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	log = out.Level(lvl).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) {
	emit(log.Debug(), msg, args)
}

func Info(msg string, args ...any) {
	emit(log.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	emit(log.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	emit(log.Error(), msg, args)
}

// emit attaches args to the event. Args are consumed as "key", value pairs;
// a bare error (the common `logger.Error("Repo:Op:Error:", err)` call shape)
// becomes the error field, anything else unpaired lands in "args".
func emit(ev *zerolog.Event, msg string, args []any) {
	i := 0
	for i < len(args) {
		if err, ok := args[i].(error); ok {
			ev = ev.Err(err)
			i++
			continue
		}
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			ev = ev.Interface(key, args[i+1])
			i += 2
			continue
		}
		ev = ev.Interface("args", args[i:])
		break
	}
	ev.Msg(msg)
}

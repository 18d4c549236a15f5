package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

type Options struct {
	AppName     string
	Environment string
	Development bool
	SentryDSN   string
}

// Init initializes the global logger.
// Development: text format with Debug level.
// Production: JSON format with Info level.
// Errors are also sent to Sentry when a DSN is configured.
func Init(opts Options) {
	var handlers []slog.Handler

	if opts.Development {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			Environment:      opts.Environment,
			TracesSampleRate: 0.2,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		} else {
			slog.Warn("sentry disabled", "error", err)
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	if opts.AppName != "" {
		Log = Log.With("app", opts.AppName)
	}
	slog.SetDefault(Log)
}

// Flush waits for buffered Sentry events before shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}

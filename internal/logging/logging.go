package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/utils"
)

type Component string

const (
	MainComponent     Component = "MAIN"
	ApiComponent      Component = "API"
	StoreComponent    Component = "STORE"
	DatabaseComponent Component = "DATABASE"
	ClientComponent   Component = "CLIENT"
)

const timestampFormat = "2006-01-02 15:04:05"

type Logger struct {
	*logrus.Entry
}

func NewLogger(cfg config.Config) (*Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	log.SetOutput(os.Stdout)
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	return &Logger{
		Entry: logrus.NewEntry(log).WithField("component", MainComponent),
	}, nil
}

// NewNopLogger discards everything. Used by tests and tools that need a
// Logger but no output.
func NewNopLogger() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Entry: logrus.NewEntry(log)}
}

func (l *Logger) WithComponent(component Component) *Logger {
	return &Logger{
		Entry: l.Entry.WithField("component", component),
	}
}

func (l *Logger) WithApiTag() *Logger {
	return l.WithComponent(ApiComponent)
}

func (l *Logger) WithStoreTag() *Logger {
	return l.WithComponent(StoreComponent)
}

func (l *Logger) WithClientTag() *Logger {
	return l.WithComponent(ClientComponent)
}

func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithLocalError attaches the error and, for LocalErrors, its kind and
// message so they can be searched without parsing the error string.
func (l *Logger) WithLocalError(err error) *Logger {
	entry := l.Entry.WithError(err).WithField("error_kind", string(errlocal.KindOf(err)))
	var le errlocal.LocalError
	if errors.As(err, &le) {
		entry = entry.WithField("error_message", le.Message())
		if le.System() != "" {
			entry = entry.WithField("error_system", le.System())
		}
	}
	return &Logger{Entry: entry}
}

func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{}

	for key := range utils.ContextKeys {
		val, ok := utils.GetContextValue(ctx, key)
		if !ok {
			continue
		}
		switch key {
		case utils.TimeKey:
			continue
		default:
			if s, ok := val.(string); ok && s != "" {
				fields[string(key)] = s
			}
		}
	}

	if len(fields) > 0 {
		return &Logger{
			Entry: l.WithFields(fields),
		}
	}

	return l
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger пишет JSON-строки вида
// {"timestamp","level","service","action","message","hostname","request_id",...}.
type Logger struct {
	service   string
	requestID string
	base      *logrus.Logger
}

var host = hostname()

func New(service string) *Logger {
	return NewWithOutput(service, os.Stdout)
}

func NewWithOutput(service string, out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return &Logger{service: service, base: l}
}

// SetLevel принимает debug|info|warn|error; неизвестное значение игнорируется.
func (l *Logger) SetLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return
	}
	l.base.SetLevel(lvl)
}

// Named возвращает логгер другого сервиса с тем же выводом и уровнем.
func (l *Logger) Named(service string) *Logger {
	return &Logger{service: service, requestID: l.requestID, base: l.base}
}

func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{service: l.service, requestID: id, base: l.base}
}

func (l *Logger) log(level logrus.Level, action string, fields map[string]any, err error) {
	entry := l.base.WithFields(logrus.Fields{
		"service":    l.service,
		"action":     action,
		"hostname":   host,
		"request_id": l.requestID,
	})
	if fields != nil {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	if err != nil {
		entry = entry.WithField("error", map[string]any{"msg": err.Error(), "stack": fmt.Sprintf("%T", err)})
	}
	entry.Log(level, action)
}

func (l *Logger) Info(action string, fields map[string]any)  { l.log(logrus.InfoLevel, action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any) { l.log(logrus.DebugLevel, action, fields, nil) }
func (l *Logger) Warn(action string, fields map[string]any)  { l.log(logrus.WarnLevel, action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log(logrus.ErrorLevel, action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }

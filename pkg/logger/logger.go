package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Level represents the severity of a log message
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Logger is the main logger interface
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
	WithPrefix(prefix string) Logger
}

var (
	timeColor   = color.New(color.FgHiBlack)
	prefixColor = color.New(color.FgCyan)
	fieldColor  = color.New(color.FgHiBlack)

	levelColors = map[Level]*color.Color{
		DebugLevel: color.New(color.FgHiBlack),
		InfoLevel:  color.New(color.FgGreen),
		WarnLevel:  color.New(color.FgYellow),
		ErrorLevel: color.New(color.FgRed),
		FatalLevel: color.New(color.FgRed, color.Bold),
	}

	levelNames = map[Level]string{
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO ",
		WarnLevel:  "WARN ",
		ErrorLevel: "ERROR",
		FatalLevel: "FATAL",
	}
)

// logger implements the Logger interface
type logger struct {
	mu       sync.Mutex
	level    Level
	writer   io.Writer
	fields   []field
	prefix   string
	showTime bool
}

type field struct {
	key   string
	value interface{}
}

// Config holds logger configuration
type Config struct {
	Level    Level
	Writer   io.Writer
	ShowTime bool
}

// Default logger instance
var defaultLogger = New()

// New creates a new logger with default configuration. Color output is
// disabled automatically when stdout is not a terminal.
func New() Logger {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	return NewWithConfig(Config{Level: InfoLevel, Writer: os.Stdout, ShowTime: true})
}

// NewWithConfig creates a new logger with custom configuration
func NewWithConfig(cfg Config) Logger {
	return &logger{level: cfg.Level, writer: cfg.Writer, showTime: cfg.ShowTime}
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	if l, ok := defaultLogger.(*logger); ok {
		l.mu.Lock()
		l.level = level
		l.mu.Unlock()
	}
}

// SetNoColor disables color output
func SetNoColor(noColor bool) {
	color.NoColor = noColor
}

// Helper methods for the default logger
func Debug(args ...interface{})                      { defaultLogger.Debug(args...) }
func Debugf(format string, args ...interface{})      { defaultLogger.Debugf(format, args...) }
func Info(args ...interface{})                       { defaultLogger.Info(args...) }
func Infof(format string, args ...interface{})       { defaultLogger.Infof(format, args...) }
func Warn(args ...interface{})                       { defaultLogger.Warn(args...) }
func Warnf(format string, args ...interface{})       { defaultLogger.Warnf(format, args...) }
func Error(args ...interface{})                      { defaultLogger.Error(args...) }
func Errorf(format string, args ...interface{})      { defaultLogger.Errorf(format, args...) }
func Fatal(args ...interface{})                      { defaultLogger.Fatal(args...) }
func Fatalf(format string, args ...interface{})      { defaultLogger.Fatalf(format, args...) }
func WithField(key string, value interface{}) Logger { return defaultLogger.WithField(key, value) }
func WithPrefix(prefix string) Logger                { return defaultLogger.WithPrefix(prefix) }

func (l *logger) log(level Level, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()

	var parts []string
	if l.showTime {
		parts = append(parts, timeColor.Sprint(time.Now().Format("15:04:05")))
	}
	parts = append(parts, levelColors[level].Sprint(levelNames[level]))
	if l.prefix != "" {
		parts = append(parts, prefixColor.Sprintf("[%s]", l.prefix))
	}
	for _, f := range l.fields {
		parts = append(parts, fieldColor.Sprintf("%s=%v", f.key, f.value))
	}
	parts = append(parts, fmt.Sprint(args...))

	_, _ = fmt.Fprintln(l.writer, strings.Join(parts, " "))

	l.mu.Unlock()

	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

func (l *logger) Debug(args ...interface{})                 { l.log(DebugLevel, args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.logf(DebugLevel, format, args...) }
func (l *logger) Info(args ...interface{})                  { l.log(InfoLevel, args...) }
func (l *logger) Infof(format string, args ...interface{})  { l.logf(InfoLevel, format, args...) }
func (l *logger) Warn(args ...interface{})                  { l.log(WarnLevel, args...) }
func (l *logger) Warnf(format string, args ...interface{})  { l.logf(WarnLevel, format, args...) }
func (l *logger) Error(args ...interface{})                 { l.log(ErrorLevel, args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.logf(ErrorLevel, format, args...) }
func (l *logger) Fatal(args ...interface{})                 { l.log(FatalLevel, args...) }
func (l *logger) Fatalf(format string, args ...interface{}) { l.logf(FatalLevel, format, args...) }

func (l *logger) WithField(key string, value interface{}) Logger {
	clone := l.clone()
	clone.fields = append(clone.fields, field{key: key, value: value})
	return clone
}

func (l *logger) WithPrefix(prefix string) Logger {
	clone := l.clone()
	clone.prefix = prefix
	return clone
}

func (l *logger) clone() *logger {
	return &logger{
		level:    l.level,
		writer:   l.writer,
		fields:   append([]field(nil), l.fields...),
		prefix:   l.prefix,
		showTime: l.showTime,
	}
}

// ParseLevel parses a string log level
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"glootie_zed/internal/shared/types"
)

// current 保存当前 logger。宿主可能在任意线程上重新配置，
// 读写都走原子指针，不直接改 zerolog/log 的全局变量。
var (
	current       atomic.Pointer[zerolog.Logger]
	timestampOnce sync.Once
)

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	current.Store(&l)
}

// Init initializes the logger on stderr.
// 宿主进程可能重复加载配置，Init 可以被多次调用。
func Init(cfg types.LogConf) error {
	return InitWithWriter(cfg, os.Stderr)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(cfg types.LogConf, out io.Writer) error {
	if out == nil {
		return fmt.Errorf("logger output is nil")
	}

	level := ParseLevel(cfg.Level)

	// Force all timestamps to be in UTC.
	timestampOnce.Do(func() {
		zerolog.TimestampFunc = func() time.Time {
			return time.Now().UTC()
		}
	})

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}

	l := zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
	current.Store(&l)

	Debug().Msgf("Logger initialized with level: %s", level.String())
	return nil
}

// ParseLevel maps a config level string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	levelStr := strings.ToLower(strings.TrimSpace(s))
	if levelStr == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || level == zerolog.NoLevel {
		fmt.Fprintf(os.Stderr, "Unknown log level '%s', defaulting to 'info'\n", levelStr)
		return zerolog.InfoLevel
	}
	return level
}

// 用于在日志中区分不同组件的输出。
func WithComponent(name string) zerolog.Logger {
	return current.Load().With().Str("component", name).Logger()
}

// Event is a wrapper for a zerolog event.
type Event struct {
	*zerolog.Event
}

// Debug starts a new message with debug level.
func Debug() *Event {
	return &Event{current.Load().Debug()}
}

// Info starts a new message with info level.
func Info() *Event {
	return &Event{current.Load().Info()}
}

// Error starts a new message with error level.
func Error() *Event {
	return &Event{current.Load().Error()}
}

// Str adds a string field to the event.
func (e *Event) Str(key, value string) *Event {
	e.Event = e.Event.Str(key, value)
	return e
}

func (e *Event) Bool(key string, value bool) *Event {
	e.Event = e.Event.Bool(key, value)
	return e
}

// Err adds an error field to the event.
func (e *Event) Err(err error) *Event {
	e.Event = e.Event.Err(err)
	return e
}

// Interface adds a field with any type to the event.
func (e *Event) Interface(key string, value interface{}) *Event {
	e.Event = e.Event.Interface(key, value)
	return e
}

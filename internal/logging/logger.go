package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Level is a logging severity
type Level int32

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// EnvVar overrides the configured level when set (e.g. EXPLORA_LOG=debug)
const EnvVar = "EXPLORA_LOG"

func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts level names case-insensitively
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

var (
	level  atomic.Int32
	mu     sync.Mutex
	logger = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
)

func init() {
	level.Store(int32(INFO))
}

// Init sets the level from name, letting EXPLORA_LOG take precedence
func Init(name string) error {
	if env := os.Getenv(EnvVar); env != "" {
		name = env
	}
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	SetLevel(l)
	Info("Log level set to `%s`.", l)
	return nil
}

func SetLevel(l Level) {
	level.Store(int32(l))
}

func CurrentLevel() Level {
	return Level(level.Load())
}

// SetOutput redirects all log output; used by tests to capture warnings
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

func Enabled(l Level) bool {
	return l >= CurrentLevel()
}

func Trace(format string, args ...any) { logf(TRACE, format, args...) }
func Debug(format string, args ...any) { logf(DEBUG, format, args...) }
func Info(format string, args ...any)  { logf(INFO, format, args...) }
func Warn(format string, args ...any)  { logf(WARN, format, args...) }
func Error(format string, args ...any) { logf(ERROR, format, args...) }

func logf(l Level, format string, args ...any) {
	if !Enabled(l) {
		return
	}
	msg := fmt.Sprintf("[%s] %s", l, fmt.Sprintf(format, args...))
	mu.Lock()
	logger.Output(3, msg)
	mu.Unlock()
}

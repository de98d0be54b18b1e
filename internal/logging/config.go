// Package logging is the structured-logging facade every other package
// in this module calls into instead of touching zerolog directly.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "OBSWIRE_LOG_LEVEL"
	EnvLogTimestamp = "OBSWIRE_LOG_TIMESTAMP"
	EnvLogNoColor   = "OBSWIRE_LOG_NOCOLOR"
	EnvLogBypass    = "OBSWIRE_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Bypass    bool
}

var (
	configureOnce sync.Once
	mu            sync.RWMutex
	logger        = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.InfoLevel)
)

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure wires the package-level logger. It runs at most once per
// process; later calls are no-ops so that test packages and cmd/ mains
// can both call it without racing each other.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		set(build(cfg))
	})
}

func build(cfg config) zerolog.Logger {
	if cfg.Bypass {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	if !cfg.Timestamp {
		writer.PartsExclude = []string{zerolog.TimestampFieldName}
	} else {
		writer.TimeFormat = time.RFC3339
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(cfg.Level)
}

func set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func defaultConfig(profile Profile) config {
	switch profile {
	case ProfileTest:
		return config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogBypass)); ok {
		cfg.Bypass = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

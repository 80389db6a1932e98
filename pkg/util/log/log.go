package log

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is the global application logger. It defaults to a no-op logger so
// that library code can log unconditionally.
var Logger = log.NewNopLogger()

// Config controls the global logger.
type Config struct {
	LogLevel  string `yaml:"level"`
	LogFormat string `yaml:"format"`
}

// RegisterFlags adds the flags required to config this to the given FlagSet.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
	f.StringVar(&cfg.LogFormat, "log.format", "logfmt", "Output log messages in the given format. Valid formats: [logfmt, json]")
}

// InitLogger initialises the global logger according to the config.
func InitLogger(cfg *Config) error {
	var l log.Logger
	if cfg.LogFormat == "json" {
		l = log.NewJSONLogger(log.NewSyncWriter(os.Stderr))
	} else {
		l = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	}

	var filter level.Option
	switch cfg.LogLevel {
	case "debug":
		filter = level.AllowDebug()
	case "info":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return fmt.Errorf("unrecognized log level %q", cfg.LogLevel)
	}

	Logger = level.NewFilter(log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), filter)
	return nil
}

// Package logging routes zerolog and logrus into a rotating file. The
// terminal belongs to the TUI, so nothing is written to stderr.
package logging

import (
	"io"
	"path/filepath"
	"prtrack/internal/pkg/fs"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	File  string
	Level string
	// Debug forces the debug level regardless of Level.
	Debug bool
}

var filesystem fs.Filesystem = fs.OS{}

var fileWriter *lumberjack.Logger

// ParseLevel maps a config value onto a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func logrusLevel(l zerolog.Level) logrus.Level {
	switch l {
	case zerolog.TraceLevel:
		return logrus.TraceLevel
	case zerolog.DebugLevel:
		return logrus.DebugLevel
	case zerolog.WarnLevel:
		return logrus.WarnLevel
	case zerolog.ErrorLevel, zerolog.Disabled:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func newWriter(o *Options) (io.Writer, error) {
	file, err := homedir.Expand(o.File)
	if err != nil {
		return nil, errors.Wrap(err, "cannot resolve log file")
	}

	if dir := filepath.Dir(file); dir != "" && dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "cannot create log directory")
		}
	}

	fileWriter = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	return fileWriter, nil
}

// Setup points the global zerolog logger and the logrus standard logger at
// the same rotating file.
func Setup(o *Options) error {
	w, err := newWriter(o)
	if err != nil {
		return err
	}

	level := ParseLevel(o.Level)
	if o.Debug {
		level = zerolog.DebugLevel
	}

	Attach(w, level)
	zlog.Debug().Str("file", o.File).Str("level", level.String()).Msg("logging initialized")

	return nil
}

// Attach wires both loggers to w without touching the filesystem.
func Attach(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zlog.Logger = zerolog.New(w).With().Timestamp().Logger()

	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrusLevel(level))
}

func Close() error {
	if fileWriter != nil {
		return fileWriter.Close()
	}

	return nil
}

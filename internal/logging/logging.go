package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

// Level maps a config level string to zerolog, defaulting to info.
func Level(s string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(s)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && runtime.GOOS != "windows"
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// Setup configures the global logger. The returned func closes the log file,
// if one was opened.
func Setup(level, file string) (func(), error) {
	zerolog.SetGlobalLevel(Level(level))

	var out io.Writer = os.Stdout
	if isTerminalAttached() {
		out = consoleWriter(os.Stdout)
	}

	closeFn := func() {}
	if file != "" {
		f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return closeFn, fmt.Errorf("error opening log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(out, f)
		closeFn = func() { _ = f.Close() }
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}

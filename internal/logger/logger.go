// Package logger provides levelled logging on top of the standard log package.
//
// Levels, in increasing verbosity:
//
//	Error < Info < Debug < Trace
//
// Output goes to stderr so stdout stays reserved for check results:
//
//	logger.SetLevel(logger.Debug)
//	logger.Infof("running %d scenarios", n)
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Level represents a logging verbosity level.
type Level int

const (
	Error Level = iota // Error logs failures only.
	Info               // Info logs lifecycle events.
	Debug              // Debug logs per-scenario values.
	Trace              // Trace logs request level detail.
)

var levelNames = map[string]Level{
	"error": Error,
	"info":  Info,
	"debug": Debug,
	"trace": Trace,
}

// current holds the active level; messages above it are dropped.
var current = Info

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetLevel sets the global verbosity.
func SetLevel(l Level) {
	current = l
}

// SetVerbosity sets the global verbosity from a numeric flag value.
func SetVerbosity(v int) {
	current = Level(v)
}

// CurrentLevel returns the active verbosity.
func CurrentLevel() Level {
	return current
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// ParseLevel accepts a level name (error, info, debug, trace) or its number.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if l, ok := levelNames[s]; ok {
		return l, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(Error) || n > int(Trace) {
		return Info, fmt.Errorf("unknown log level %q", s)
	}
	return Level(n), nil
}

func (l Level) String() string {
	for name, lvl := range levelNames {
		if lvl == l {
			return name
		}
	}
	return strconv.Itoa(int(l))
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		// calldepth 3 reports the caller of Errorf/Infof/...
		_ = log.Output(3, fmt.Sprintf(prefix+format, args...))
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs very detailed execution traces.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}

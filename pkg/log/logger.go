// Package log gives each renderer package its own named go-logging logger
// writing through one shared, leveled backend.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Level is a verbosity threshold. Messages below it are dropped.
type Level int

// Verbosity levels, lowest first.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// levels maps each Level to its go-logging value and accepted names. The
// first name is the canonical one.
var levels = map[Level]struct {
	backend logging.Level
	names   []string
}{
	Debug:   {logging.DEBUG, []string{"debug"}},
	Info:    {logging.INFO, []string{"info"}},
	Notice:  {logging.NOTICE, []string{"notice"}},
	Warning: {logging.WARNING, []string{"warning", "warn"}},
	Error:   {logging.ERROR, []string{"error"}},
}

// String returns the canonical level name.
func (l Level) String() string {
	if entry, ok := levels[l]; ok {
		return entry.names[0]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Logger is implemented by *logging.Logger. Only the leveled print methods
// are exposed so callers cannot reconfigure the shared backend.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// state is guarded by mu. SetSink rebuilds the backend and must carry the
// level over.
var (
	mu      sync.Mutex
	backend logging.LeveledBackend
	level   = Notice
)

// New returns the logger for module. Loggers are created once per package.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink sends every module's output to w.
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(levels[level].backend, "")
	logging.SetBackend(backend)
}

// SetLevel changes the threshold for every module.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := levels[l]; !ok {
		l = Notice
	}
	level = l
	backend.SetLevel(levels[l].backend, "")
}

// ParseLevel accepts a level name in any case. An empty name is Notice.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Notice, nil
	}
	for l, entry := range levels {
		for _, n := range entry.names {
			if n == name {
				return l, nil
			}
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

func init() {
	SetSink(os.Stdout)
}

package cmdlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jwalton/gchalk"
	"github.com/rs/zerolog"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	out       io.Writer
	emojis    bool
	indention int
}

// New returns a new Logger writing to out
func New(out io.Writer) *Logger {
	emojis := os.Getenv("CI") == ""
	return &Logger{out: out, emojis: emojis}
}

// DisableColor turns off all colors (including the ones of other Loggers)
func DisableColor() {
	gchalk.SetLevel(gchalk.LevelNone)
}

// SetEmojis toggles emoji output
func (l *Logger) SetEmojis(enabled bool) {
	l.emojis = enabled
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Indented returns a logger that indents every line by two more spaces
func (l *Logger) Indented() *Logger {
	logger := *l
	logger.indention += 2
	return &logger
}

// Headline prints a bold cyan line
func (l *Logger) Headline(s string) {
	l.println(gchalk.WithCyan().Bold(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Infof is Info with formatting
func (l *Logger) Infof(format string, a ...interface{}) {
	l.println(fmt.Sprintf(format, a...))
}

// Log prints a dimmed line
func (l *Logger) Log(s string) {
	l.println(gchalk.Dim(s))
}

// Success prints a green line
func (l *Logger) Success(s string) {
	l.println(l.sprintEmoji("✅") + gchalk.Green(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	l.println(l.sprintEmoji("⚠️") + gchalk.WithYellow().Bold(s))
}

// Field is one line of a Fields block
type Field struct {
	Key   string
	Value interface{}
}

// Fields prints aligned "key: value" lines
func (l *Logger) Fields(fields ...Field) {
	width := 0
	for _, f := range fields {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}
	for _, f := range fields {
		key := fmt.Sprintf("%-*s", width+1, f.Key+":")
		l.println(gchalk.Bold(key) + " " + fmt.Sprint(f.Value))
	}
}

// List prints one bullet point per item
func (l *Logger) List(items []string) {
	for _, item := range items {
		l.println(" ⦁ " + item)
	}
}

// NewZerolog returns the logger for request traces. It is silent unless verbose is set.
func NewZerolog(w io.Writer, verbose bool, noColor bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

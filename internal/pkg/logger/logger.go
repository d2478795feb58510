package logger

import (
	"log"
	"os"
)

// StdLogger is a lightweight implementation backed by Go's log package.
// Warnings and errors always reach stderr; debug and info only when
// verbose. The init command's output is eval'd from stdout, so nothing
// here may ever write there.
type StdLogger struct {
	verbose bool
	out     *log.Logger
}

// NewStd creates a StdLogger.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose, out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[DEBUG]", msg, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	l.out.Println("[INFO]", msg, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.out.Println("[WARN]", msg, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.out.Println("[ERROR]", msg, err, fields)
}

package logger

import (
	"fmt"
)

// StdoutLogger is the default Logger for non-interactive runs: piped
// output, --output json, and tests, where spinner redraws would corrupt
// the stream.
type StdoutLogger struct{}

func (l *StdoutLogger) Logf(format string, args ...interface{}) { fmt.Printf(format, args...) }
func (l *StdoutLogger) Log(msg string)                          { fmt.Println(msg) }

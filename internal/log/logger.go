package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	isDebug bool

	// out receives the human readable status lines, errOut the timestamped
	// verbose lines. Both go to stderr so stdout carries only command output.
	out    io.Writer = color.Error
	errOut io.Writer = os.Stderr

	now = time.Now
)

// Init sets the logging mode.
// If debug is true, every message becomes a timestamped, leveled line on
// stderr and Debug messages are shown. Otherwise messages are colored.
func Init(debug bool) {
	isDebug = debug
}

// SetOutput redirects status lines to w and verbose lines to errW. It returns
// a function restoring the previous writers.
func SetOutput(w, errW io.Writer) (restore func()) {
	prevOut, prevErr := out, errOut
	out, errOut = w, errW
	return func() {
		out, errOut = prevOut, prevErr
	}
}

// Section prints a major step: [+] Message
func Section(msg string) {
	emit("INFO", color.New(color.FgGreen), "[+] "+msg)
}

// Item prints a list item:     - Message
func Item(msg string) {
	emit("INFO", nil, "    - "+msg)
}

// Success prints a success message: ✨ Message
func Success(msg string) {
	emit("INFO", color.New(color.FgGreen, color.Bold), "✨ "+msg)
}

// Warn prints a warning message: [!] Message
func Warn(msg string) {
	emit("WARN", color.New(color.FgYellow), "[!] "+msg)
}

// Error prints an error message: [✘] Message
func Error(msg string) {
	emit("ERROR", color.New(color.FgRed), "[✘] "+msg)
}

// Hint prints a hint message: -> Message
func Hint(msg string) {
	emit("INFO", color.New(color.FgCyan), "-> "+msg)
}

// Debug prints a debug message only if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if !isDebug {
		return
	}
	logLine("DEBUG", fmt.Sprintf(format, v...))
}

func emit(level string, c *color.Color, msg string) {
	if isDebug {
		logLine(level, msg)
		return
	}
	if c == nil {
		_, _ = fmt.Fprintf(out, "%s\n", msg)
		return
	}
	_, _ = c.Fprintf(out, "%s\n", msg)
}

// logLine prints a standardized log message with timestamp.
func logLine(level, msg string) {
	timestamp := now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(errOut, "[%s] %s: %s\n", timestamp, level, msg)
}

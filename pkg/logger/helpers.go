package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Icons for different log types
const (
	IconSuccess = "✅"
	IconWarning = "⚠️"
	IconRefresh = "🔄"
	IconDot     = "•"
)

var sectionColor = color.New(color.FgCyan, color.Bold)

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message with a refresh icon
func Progress(args ...interface{}) {
	defaultLogger.Info(IconRefresh + " " + fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// LogSection creates a visual section separator
func LogSection(title string) {
	line := strings.Repeat("=", 50)
	fmt.Println(sectionColor.Sprint(line))
	fmt.Println(sectionColor.Sprint(title))
	fmt.Println(sectionColor.Sprint(line))
}

// LogList logs a list of items with bullets
func LogList(title string, items []string) {
	Info(title)
	for _, item := range items {
		fmt.Printf("  %s %s\n", IconDot, item)
	}
}

// LogKeyValue logs a key-value pair with nice formatting
func LogKeyValue(key string, value interface{}) {
	fmt.Printf("%s %v\n", prefixColor.Sprintf("%s:", key), value)
}

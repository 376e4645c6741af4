package log

import (
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type (
	Level     = charmlog.Level
	Styles    = charmlog.Styles
	Formatter = charmlog.Formatter
)

const (
	DebugLevel = charmlog.DebugLevel
	InfoLevel  = charmlog.InfoLevel
	WarnLevel  = charmlog.WarnLevel
	ErrorLevel = charmlog.ErrorLevel
)

const TextFormatter = charmlog.TextFormatter

// ParseLevel maps a config level name to a Level, defaulting to InfoLevel
func ParseLevel(s string) Level {
	l, err := charmlog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return InfoLevel
	}
	return l
}

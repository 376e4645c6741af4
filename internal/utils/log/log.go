package log

import (
	"log/slog"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultStylesOnce sync.Once
	defaultStyles     *Styles
)

// DefaultStyles returns the level styles padded to a fixed width
func DefaultStyles() *Styles {
	defaultStylesOnce.Do(func() {
		styles := charmlog.DefaultStyles()
		for _, ls := range levelStyles {
			levelStr := strings.ToUpper(ls.level.String())
			if len(levelStr) < ls.maxWidth {
				levelStr = levelStr + strings.Repeat(" ", ls.maxWidth-len(levelStr))
			}
			styles.Levels[ls.level] = ls.style.SetString(levelStr)
		}
		defaultStyles = styles
	})
	return defaultStyles
}

// New creates a new logger with the given options
func New(opts ...Option) *slog.Logger {
	o := DefaultOptions()
	o.Apply(opts...)

	// Create and configure the handler
	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles) // Always set styles to ensure level definitions
	if o.ColorProfile != nil {
		handler.SetColorProfile(*o.ColorProfile)
	}
	if len(o.Fields) > 0 {
		handler = handler.With(o.Fields...)
	}

	logger := slog.New(handler)

	if o.Default {
		charmlog.SetDefault(handler)
		slog.SetDefault(logger)
	}

	return logger
}

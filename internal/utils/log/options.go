package log

import (
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Options represents logger configuration options
type Options struct {
	charmlog.Options // embed Options instead of pointer
	Writer           io.Writer
	Styles           *Styles
	Default          bool
	ColorProfile     *termenv.Profile
	Fields           []any
}

// DefaultOptions returns the default logger options
func DefaultOptions() *Options {
	return &Options{
		Options: charmlog.Options{
			Level:           InfoLevel,
			ReportCaller:    false,
			ReportTimestamp: false,
		},
		Writer: io.Discard,
		Styles: DefaultStyles(),
	}
}

// Apply applies the given options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

type Option func(*Options)

func UseLevel(l Level) Option {
	return func(o *Options) {
		o.Level = l
	}
}

func UseOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// UseColorProfile fixes the color profile instead of detecting it from the
// environment, e.g. termenv.Ascii for a log file
func UseColorProfile(p termenv.Profile) Option {
	return func(o *Options) {
		o.ColorProfile = &p
	}
}

func UseReportCaller(report bool) Option {
	return func(o *Options) {
		o.ReportCaller = report
	}
}

func UseReportTimestamp(report bool) Option {
	return func(o *Options) {
		o.ReportTimestamp = report
	}
}

func UseTimeFormat(format string) Option {
	return func(o *Options) {
		o.TimeFormat = format
	}
}

func UseFormatter(f Formatter) Option {
	return func(o *Options) {
		o.Formatter = f
	}
}

// UseFields attaches key/value pairs to every record, e.g. a run id
func UseFields(keyvals ...any) Option {
	return func(o *Options) {
		o.Fields = append(o.Fields, keyvals...)
	}
}

func AsDefault() Option {
	return func(o *Options) {
		o.Default = true
	}
}

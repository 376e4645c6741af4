package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/lomiri-camera-app-migrate/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Identity Identity      `yaml:"identity"`
	Roots    Roots         `yaml:"roots"`
	Core     Core          `yaml:"core"`
	Logging  LoggingConfig `yaml:"logging"`
}

type Identity struct {
	Organization   string `yaml:"organization" validate:"required,identifier"`
	Application    string `yaml:"application" validate:"required,identifier,nefield=OldApplication"`
	OldApplication string `yaml:"old_application" validate:"required,identifier"`
}

// Roots override where the media directories live. Empty means ~/Pictures and ~/Videos.
type Roots struct {
	Pictures string `yaml:"pictures,omitempty" validate:"omitempty,validDirPath"`
	Videos   string `yaml:"videos,omitempty" validate:"omitempty,validDirPath"`
}

type Core struct {
	AllowCrossDevice bool `yaml:"allow_cross_device"`
}

type LoggingConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Level    string         `yaml:"level" validate:"required,oneof=debug info warn error"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize  string `yaml:"max_size" validate:"required,validSize"`
	MaxFiles int    `yaml:"max_files" validate:"min=0"`
}

type configError struct {
	configPath string
	err        error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't read the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The default config path is %s.
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.CAMERA_MIGRATE_CONFIG_PATH,
		DefaultContents(),
		indent.String(e.err.Error(), 2),
	)
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

type parser struct {
	validate *validator.Validate
}

func newParser() parser {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("identifier", validateIdentifier)
	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("validDirPath", validateDirPath)

	return parser{validate: validate}
}

func (p parser) read(path string) (Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{configPath: path, err: err}
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, err
	}

	if err := p.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, err := range verrs {
				return cfg, fmt.Errorf("validation error: field %s, %q is invalid (%s)", err.Namespace(), err.Value(), err.Tag())
			}
		}
		return cfg, err
	}

	if cfg.Roots, err = cfg.Roots.expanded(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse reads the config file at path. An empty path means the default
// location, which is optional: when nothing is there the defaults are used.
func Parse(path string) (Config, error) {
	p := newParser()

	if path == "" {
		path = env.CAMERA_MIGRATE_CONFIG_PATH
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file, using defaults", "config-file", path)
			return NewDefaultConfig(), nil
		}
	}
	slog.Debug("config file found", "config-file", path)

	cfg, err := p.read(path)
	if err != nil {
		return cfg, parsingError{err: err}
	}
	return cfg, nil
}

func (r Roots) expanded() (Roots, error) {
	var err error
	if r.Pictures != "" {
		if r.Pictures, err = expandPath(r.Pictures); err != nil {
			return r, err
		}
	}
	if r.Videos != "" {
		if r.Videos, err = expandPath(r.Videos); err != nil {
			return r, err
		}
	}
	return r, nil
}

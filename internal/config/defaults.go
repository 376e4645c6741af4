package config

import "gopkg.in/yaml.v2"

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() Config {
	return Config{
		Identity: Identity{
			Organization:   "camera.ubports",
			Application:    "camera.ubports",
			OldApplication: "com.ubuntu.camera",
		},
		Core: Core{
			AllowCrossDevice: false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "debug",
			Rotation: RotationConfig{
				MaxSize:  "1MB",
				MaxFiles: 3,
			},
		},
	}
}

// DefaultContents renders the default config as YAML
func DefaultContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

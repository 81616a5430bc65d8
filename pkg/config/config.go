// Package config holds the literals the chat helpers are parameterized with:
// the generic prompt set, the default prompt and the speaker selection
// template. Values are layered: built-in defaults, then an optional YAML
// file, then CHATPARTS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHATPARTS_"

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// SpeakerSelection holds the fixed lines around the agent list of a speaker
// selection message.
type SpeakerSelection struct {
	Header string `yaml:"header" env:"HEADER"`
	Prompt string `yaml:"prompt" env:"PROMPT"`
	Note   string `yaml:"note" env:"NOTE"`
}

// Config is the helper configuration.
type Config struct {
	// GenericPrompts are input prompts that carry no information of their own
	// and are replaced by DefaultPrompt.
	GenericPrompts []string `yaml:"genericPrompts" env:"GENERIC_PROMPTS" envSeparator:"|"`
	DefaultPrompt  string   `yaml:"defaultPrompt" env:"DEFAULT_PROMPT"`

	SpeakerSelection SpeakerSelection `yaml:"speakerSelection" envPrefix:"SPEAKER_SELECTION_"`

	// DefaultImageAlt is the alt text given to images that arrive without one.
	DefaultImageAlt string `yaml:"defaultImageAlt" env:"DEFAULT_IMAGE_ALT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GenericPrompts: []string{">", "> "},
		DefaultPrompt:  "Enter your message to start the conversation:",
		SpeakerSelection: SpeakerSelection{
			Header: "**Speaker selection**",
			Prompt: "Please select the next speaker from the list below:",
			Note:   "Reply with the number of the agent, or press Enter to let the manager decide.",
		},
		DefaultImageAlt: "Image",
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when
// path is empty) and the process environment.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, envMap(os.Environ()))
}

// LoadWithEnv is Load with an explicit environment instead of the process one.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports an error wrapping ErrInvalidConfig when a required
// literal is empty.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.DefaultPrompt) == "" {
		missing = append(missing, "defaultPrompt")
	}
	if strings.TrimSpace(c.SpeakerSelection.Header) == "" {
		missing = append(missing, "speakerSelection.header")
	}
	if strings.TrimSpace(c.SpeakerSelection.Prompt) == "" {
		missing = append(missing, "speakerSelection.prompt")
	}
	if strings.TrimSpace(c.SpeakerSelection.Note) == "" {
		missing = append(missing, "speakerSelection.note")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: empty %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// IsGenericPrompt reports whether prompt is one of the generic prompts.
func (c Config) IsGenericPrompt(prompt string) bool {
	return slices.Contains(c.GenericPrompts, prompt)
}

func envMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}

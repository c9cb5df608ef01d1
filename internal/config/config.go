package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoOption is returned when a config key is absent.
var ErrNoOption = errors.New("no such option")

// PowerAdmin holds all configuration for the plugin.
// Built once by LoadPowerAdmin and never mutated afterwards.
type PowerAdmin struct {
	LogLevel string `yaml:"log_level"`

	RadioSpamProtection RadioSpamProtection `yaml:"radio_spam_protection"`
	Special             Special             `yaml:"special"`

	// Commands maps a command name to its minimum level ("60", "mod", "40-100").
	Commands map[string]string `yaml:"commands"`

	// ConfigModes maps a game mode (lms, jump) to a server cfg file executed
	// when an admin switches to that mode.
	ConfigModes map[string]string `yaml:"config_modes"`
}

// RadioSpamProtection configures the radio spam scorer.
type RadioSpamProtection struct {
	Enable       bool `yaml:"enable"`
	MuteDuration int  `yaml:"mute_duration"` // seconds, >= 1
}

// Special holds settings not tied to a single command level.
type Special struct {
	PaidentFullLevel int `yaml:"paident_full_level"`
}

// DefaultRadioSpamProtection returns the protection disabled with a 2s mute.
func DefaultRadioSpamProtection() RadioSpamProtection {
	return RadioSpamProtection{
		Enable:       false,
		MuteDuration: 2,
	}
}

// DefaultPowerAdmin returns PowerAdmin config with sensible defaults.
func DefaultPowerAdmin() PowerAdmin {
	return PowerAdmin{
		LogLevel:            "info",
		RadioSpamProtection: DefaultRadioSpamProtection(),
		Special: Special{
			PaidentFullLevel: 60,
		},
		Commands: map[string]string{
			"pakill":     "60",
			"palms":      "60",
			"pajump":     "60",
			"paskins":    "60",
			"pafunstuff": "60",
			"pagoto":     "60",
			"pastamina":  "60",
			"paident":    "20",
		},
		ConfigModes: map[string]string{},
	}
}

// LoadPowerAdmin loads plugin config from a YAML file.
// If the file doesn't exist, returns defaults. Individual keys that are
// missing or invalid are logged and keep their default value; only an
// unreadable or malformed file is an error.
func LoadPowerAdmin(path string) (PowerAdmin, error) {
	cfg := DefaultPowerAdmin()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err = ParsePowerAdmin(data)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ParsePowerAdmin decodes plugin config from YAML bytes.
func ParsePowerAdmin(data []byte) (PowerAdmin, error) {
	cfg := DefaultPowerAdmin()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return cfg, err
	}
	var doc *yaml.Node // nil for an empty file: every key is missing
	if len(root.Content) > 0 {
		doc = root.Content[0]
		if doc.Kind != yaml.MappingNode {
			return cfg, fmt.Errorf("top level must be a mapping, got %s", kindName(doc.Kind))
		}
	}

	if v, err := decodeKey[string](doc, "log_level"); err == nil {
		cfg.LogLevel = v
	} else if !errors.Is(err, ErrNoOption) {
		slog.Error("could not load log_level config value", "error", err)
	}

	loadRadioSpamProtection(doc, &cfg.RadioSpamProtection)
	loadSpecial(doc, &cfg.Special)

	if cmds, err := decodeKey[map[string]string](doc, "commands"); err == nil {
		for name, level := range cmds {
			cfg.Commands[name] = level
		}
	} else if !errors.Is(err, ErrNoOption) {
		slog.Error("could not load commands section, using default levels", "error", err)
	}

	if modes, err := decodeKey[map[string]string](doc, "config_modes"); err == nil {
		cfg.ConfigModes = modes
	} else if !errors.Is(err, ErrNoOption) {
		slog.Error("could not load config_modes section", "error", err)
	}

	return cfg, nil
}

func loadRadioSpamProtection(doc *yaml.Node, rsp *RadioSpamProtection) {
	def := DefaultRadioSpamProtection()

	enable, err := decodeOption[bool](doc, "radio_spam_protection", "enable")
	switch {
	case errors.Is(err, ErrNoOption):
		slog.Warn("could not find radio_spam_protection/enable in config file, using default",
			"default", rsp.Enable)
	case err != nil:
		slog.Error("could not load radio_spam_protection/enable config value", "error", err)
		slog.Debug("using default value for radio_spam_protection/enable", "default", rsp.Enable)
	default:
		rsp.Enable = enable
	}

	duration, err := decodeOption[int](doc, "radio_spam_protection", "mute_duration")
	if err == nil && duration < 1 {
		err = errors.New("radio_spam_protection/mute_duration cannot be lower than 1")
	}
	switch {
	case errors.Is(err, ErrNoOption):
		slog.Warn("could not find radio_spam_protection/mute_duration in config file, using default",
			"default", rsp.MuteDuration)
	case err != nil:
		rsp.MuteDuration = def.MuteDuration
		slog.Error("could not load radio_spam_protection/mute_duration config value", "error", err)
		slog.Debug("using default value for radio_spam_protection/mute_duration", "default", rsp.MuteDuration)
	default:
		rsp.MuteDuration = duration
	}

	slog.Debug("radio spam protection",
		"enable", rsp.Enable,
		"muteDuration", rsp.MuteDuration)
}

func loadSpecial(doc *yaml.Node, sp *Special) {
	level, err := decodeOption[int](doc, "special", "paident_full_level")
	switch {
	case errors.Is(err, ErrNoOption):
		slog.Warn("could not find special/paident_full_level in config file, using default",
			"default", sp.PaidentFullLevel)
	case err != nil:
		slog.Error("could not load special/paident_full_level config value", "error", err,
			"default", sp.PaidentFullLevel)
	default:
		sp.PaidentFullLevel = level
	}
}

// decodeOption decodes doc[section][key] into a fresh T.
func decodeOption[T any](doc *yaml.Node, section, key string) (T, error) {
	var zero T
	sec := lookup(doc, section)
	if sec == nil {
		return zero, fmt.Errorf("%s/%s: %w", section, key, ErrNoOption)
	}
	if sec.Kind != yaml.MappingNode {
		return zero, fmt.Errorf("section %s must be a mapping, got %s", section, kindName(sec.Kind))
	}
	v, err := decodeKey[T](sec, key)
	if err != nil {
		if errors.Is(err, ErrNoOption) {
			return zero, fmt.Errorf("%s/%s: %w", section, key, ErrNoOption)
		}
		return zero, fmt.Errorf("%s/%s: %w", section, key, err)
	}
	return v, nil
}

// decodeKey decodes m[key] into a fresh T. m must be a mapping node.
func decodeKey[T any](m *yaml.Node, key string) (T, error) {
	var v T
	n := lookup(m, key)
	if n == nil {
		return v, fmt.Errorf("%s: %w", key, ErrNoOption)
	}
	if err := n.Decode(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// lookup returns the value node of key in mapping m, or nil.
// An explicit null counts as absent.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			v := m.Content[i+1]
			if v.Kind == yaml.ScalarNode && v.Tag == "!!null" {
				return nil
			}
			return v
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

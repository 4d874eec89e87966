package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/karu-codes/karu-stackfmt/errors"
	"github.com/karu-codes/karu-stackfmt/kcolor"
	"github.com/karu-codes/karu-stackfmt/kstack"
)

// Settings controls how reports are rendered.
type Settings struct {
	Color                  string `koanf:"color"`
	SourceAbbrevThreshold  int    `koanf:"source_abbrev_threshold"`
	DataURLAbbrevThreshold int    `koanf:"data_url_abbrev_threshold"`
	MaxCauseDepth          int    `koanf:"max_cause_depth"`
	Debug                  bool   `koanf:"debug"`
}

func defaults() map[string]any {
	return map[string]any{
		"color":                     string(kcolor.ModeAuto),
		"source_abbrev_threshold":   kstack.DefaultSourceAbbrevThreshold,
		"data_url_abbrev_threshold": kstack.DefaultDataURLAbbrevThreshold,
		"max_cause_depth":           kstack.DefaultMaxCauseDepth,
		"debug":                     false,
	}
}

// Load builds Settings from defaults, then the file at path (skipped when
// path is empty), then environment variables, then WithOverride values.
func Load(path string, opts ...Option) (Settings, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.CodeInternal, "config: load defaults")
	}

	if path != "" {
		if err := loadFile(k, path, o); err != nil {
			return Settings{}, err
		}
	}

	if o.envEnabled {
		if err := mergeEnv(k, o); err != nil {
			return Settings{}, err
		}
	}

	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.CodeInternal, "config: apply overrides")
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, errors.Wrap(err, errors.CodeSerialization, "config: unmarshal")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func loadFile(k *koanf.Koanf, path string, o options) error {
	data, err := o.fileReader(path)
	if err != nil {
		return errors.Wrapf(err, errors.CodeFileSystem, "config: read %q", path).WithDetail("path", path)
	}

	format, err := resolveFormat(path, o.format)
	if err != nil {
		return err
	}
	parser, err := parserFor(format)
	if err != nil {
		return err
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return errors.Wrapf(err, errors.CodeSerialization, "config: parse %q", path).WithDetail("path", path)
	}
	return nil
}

// Validate rejects settings the formatter cannot honour.
func (s Settings) Validate() error {
	if _, err := kcolor.ParseMode(s.Color); err != nil {
		return errors.Wrap(err, errors.CodeInvalidArgument, "config: color")
	}
	if s.SourceAbbrevThreshold <= 0 {
		return errors.Newf(errors.CodeInvalidArgument, "config: source_abbrev_threshold must be positive, got %d", s.SourceAbbrevThreshold)
	}
	if s.DataURLAbbrevThreshold <= 0 {
		return errors.Newf(errors.CodeInvalidArgument, "config: data_url_abbrev_threshold must be positive, got %d", s.DataURLAbbrevThreshold)
	}
	if s.MaxCauseDepth < 0 {
		return errors.Newf(errors.CodeInvalidArgument, "config: max_cause_depth must not be negative, got %d", s.MaxCauseDepth)
	}
	return nil
}

// ColorMode returns the parsed color mode, falling back to auto.
func (s Settings) ColorMode() kcolor.Mode {
	mode, err := kcolor.ParseMode(s.Color)
	if err != nil {
		return kcolor.ModeAuto
	}
	return mode
}

// FormatterOptions translates s into kstack options rendering with styler.
func (s Settings) FormatterOptions(styler kcolor.Styler) []kstack.Option {
	return []kstack.Option{
		kstack.WithStyler(styler),
		kstack.WithSourceAbbrevThreshold(s.SourceAbbrevThreshold),
		kstack.WithDataURLAbbrevThreshold(s.DataURLAbbrevThreshold),
		kstack.WithMaxCauseDepth(s.MaxCauseDepth),
	}
}

func resolveFormat(path string, forced Format) (Format, error) {
	switch forced {
	case FormatJSON, FormatYAML:
		return forced, nil
	case FormatAuto:
	default:
		return "", errors.Newf(errors.CodeInvalidArgument, "config: unsupported format %q", forced)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.CodeInvalidArgument, "config: could not detect config format from %q", path)
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatJSON:
		return json.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.CodeInvalidArgument, "config: unsupported format %q", format)
	}
}

package config

import (
	"io/fs"
	"os"
)

// DefaultEnvPrefix is prepended to environment variable names.
const DefaultEnvPrefix = "KSTACK"

type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

type options struct {
	envEnabled bool
	envPrefix  string
	envLookup  func(string) (string, bool)
	fileReader func(string) ([]byte, error)
	format     Format
	overrides  map[string]any
}

func defaultOptions() options {
	return options{
		envEnabled: true,
		envPrefix:  DefaultEnvPrefix,
		envLookup:  os.LookupEnv,
		fileReader: os.ReadFile,
		format:     FormatAuto,
	}
}

type Option func(*options)

func WithEnv(enabled bool) Option {
	return func(o *options) {
		o.envEnabled = enabled
	}
}

func WithoutEnv() Option {
	return WithEnv(false)
}

// WithEnvPrefix replaces the KSTACK prefix of environment variable names.
// An empty prefix uses the bare key (e.g. MAX_CAUSE_DEPTH).
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

func WithEnvLookup(fn func(string) (string, bool)) Option {
	return func(o *options) {
		if fn != nil {
			o.envLookup = fn
		}
	}
}

func WithFileSystem(fsys fs.FS) Option {
	return func(o *options) {
		if fsys == nil {
			return
		}
		if readFS, ok := fsys.(fs.ReadFileFS); ok {
			o.fileReader = readFS.ReadFile
			return
		}
		o.fileReader = func(name string) ([]byte, error) {
			return fs.ReadFile(fsys, name)
		}
	}
}

// WithOverride sets key after the file and environment have been merged,
// e.g. from a command line flag. Validation sees the overridden value.
func WithOverride(key string, value any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		o.overrides[key] = value
	}
}

// WithFormat forces Load to parse the provided format instead of relying on
// file extension detection.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

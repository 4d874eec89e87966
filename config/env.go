package config

import (
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/karu-codes/karu-stackfmt/errors"
)

type envKind int

const (
	envString envKind = iota
	envInt
	envBool
)

// envKeys lists the settings that can be overridden from the environment.
var envKeys = []struct {
	key  string
	kind envKind
}{
	{"color", envString},
	{"source_abbrev_threshold", envInt},
	{"data_url_abbrev_threshold", envInt},
	{"max_cause_depth", envInt},
	{"debug", envBool},
}

// EnvVar returns the environment variable consulted for key, e.g.
// KSTACK_MAX_CAUSE_DEPTH.
func EnvVar(prefix, key string) string {
	name := strings.ToUpper(key)
	if prefix == "" {
		return name
	}
	return strings.ToUpper(strings.TrimSuffix(prefix, "_")) + "_" + name
}

func mergeEnv(k *koanf.Koanf, o options) error {
	overrides := make(map[string]any)
	for _, e := range envKeys {
		name := EnvVar(o.envPrefix, e.key)
		raw, ok := o.envLookup(name)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)

		switch e.kind {
		case envInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return errors.Wrapf(err, errors.CodeInvalidArgument, "config: override %s", name)
			}
			overrides[e.key] = v
		case envBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return errors.Wrapf(err, errors.CodeInvalidArgument, "config: override %s", name)
			}
			overrides[e.key] = v
		default:
			overrides[e.key] = raw
		}
	}

	if len(overrides) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "config: merge env")
	}
	return nil
}

package settings

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// settingsBuilder accumulates settings fragments in priority order and
// folds them into one validated Settings value. Sources added earlier win;
// the fold fills only fields that every earlier source left at zero.
type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 4),
	}
}

// add appends one parsed source, or records its parse failure. Collected
// failures surface together in build.
func (b *settingsBuilder) add(cfg *Settings, err error) *settingsBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building settings: %w", b.err)
	}

	merged := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("folding settings sources: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	return b.add(envCfg, parseEnv(envCfg))
}

func (b *settingsBuilder) withFlags() *settingsBuilder {
	return b.add(ParseFlags(), nil)
}

// withJSON folds in the optional settings file. The path comes from the
// sources already added (flag or env), so call it after them; when several
// name a file, the last one is read.
func (b *settingsBuilder) withJSON() *settingsBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

// withDefaults appends the built-in defaults. Added last, every value a
// real source set survives; defaults only fill the gaps.
func (b *settingsBuilder) withDefaults() *settingsBuilder {
	return b.add(defaultSettings(), nil)
}

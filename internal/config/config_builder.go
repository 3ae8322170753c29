package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer orders the configuration sources from lowest to highest precedence.
type layer int

const (
	layerDefaults layer = iota
	layerFile
	layerEnv
	layerFlags
	layerCount
)

type configBuilder struct {
	args    []string
	rest    []string
	configs [layerCount]*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{args: args}
}

// build merges the collected layers in precedence order. Non-zero fields of a
// higher layer override the lower ones.
func (b *configBuilder) build() (*StructuredConfig, []string, error) {
	if b.err != nil {
		return nil, nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, b.rest, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs[layerDefaults] = defaults()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs[layerEnv] = envCfg
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, rest, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs[layerFlags] = flagsCfg
	b.rest = rest
	return b
}

// withFile reads the file named by the flags layer, or else by the env
// layer, so it must run after withEnv and withFlags.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, l := range []layer{layerEnv, layerFlags} {
		if cfg := b.configs[l]; cfg != nil && cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs[layerFile] = fileCfg

	return b
}

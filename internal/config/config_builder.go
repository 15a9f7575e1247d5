package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order. Errors from
// individual layers are joined and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// build merges the layers, later non-zero fields winning, then fills in
// defaults. The merged config is returned together with any validation error.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.applyDefaults()
	if err := merged.normalize(); err != nil {
		return nil, err
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv(dotEnvPath string) *configBuilder {
	if err := loadDotEnv(dotEnvPath); err != nil {
		return b.add(nil, err)
	}

	cfg := new(StructuredConfig)
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON loads the file named by the last layer that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}

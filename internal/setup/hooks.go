package setup

import (
	"gopkg.in/yaml.v3"
)

// HookConfig is the subset of .pre-commit-config.yaml we report on
type HookConfig struct {
	Repos []HookRepo `yaml:"repos"`
}

type HookRepo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev"`
	Hooks []Hook `yaml:"hooks"`
}

type Hook struct {
	ID string `yaml:"id"`
}

// ParseHookConfig decodes a pre-commit config file
func ParseHookConfig(data []byte) (*HookConfig, error) {
	var hc HookConfig
	if err := yaml.Unmarshal(data, &hc); err != nil {
		return nil, err
	}
	return &hc, nil
}

// HookCount returns the number of hooks across all repos
func (hc *HookConfig) HookCount() int {
	n := 0
	for _, r := range hc.Repos {
		n += len(r.Hooks)
	}
	return n
}

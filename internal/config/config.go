package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Network selects which Stacks chain addresses and deployments target.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// NetworkEnv overrides the configured network when set.
const NetworkEnv = "STACKS_NETWORK"

// Defaults for a fresh install.
const (
	DefaultRepoURL  = "https://github.com/serayd61/stacks-nft-marketplace"
	DefaultDocsURL  = "https://docs.stacks.co"
	DefaultLogLevel = "info"
)

// Config represents ~/.stacks-deployer/config.yaml.
type Config struct {
	Network  Network `yaml:"network"`
	RepoURL  string  `yaml:"repo_url"`
	DocsURL  string  `yaml:"docs_url"`
	LogLevel string  `yaml:"log_level,omitempty"`
}

// Default returns a config with default values.
func Default() Config {
	return Config{
		Network:  NetworkTestnet,
		RepoURL:  DefaultRepoURL,
		DocsURL:  DefaultDocsURL,
		LogLevel: DefaultLogLevel,
	}
}

// ParseNetwork accepts "mainnet" or "testnet" in any case.
func ParseNetwork(s string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(s))) {
	case NetworkMainnet:
		return NetworkMainnet, nil
	case NetworkTestnet:
		return NetworkTestnet, nil
	default:
		return "", fmt.Errorf("unknown network %q (want mainnet or testnet)", s)
	}
}

// Parse parses config.yaml bytes into a Config. Missing fields keep their
// defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Network == "" {
		cfg.Network = NetworkTestnet
	}
	n, err := ParseNetwork(string(cfg.Network))
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Network = n
	cfg.RepoURL = strings.TrimRight(cfg.RepoURL, "/")
	cfg.DocsURL = strings.TrimRight(cfg.DocsURL, "/")
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config at path. A missing file yields Default(). The
// STACKS_NETWORK environment variable overrides the file's network.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config: %w", err)
	default:
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(NetworkEnv); v != "" {
		n, err := ParseNetwork(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", NetworkEnv, err)
		}
		cfg.Network = n
	}
	return cfg, nil
}

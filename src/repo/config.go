// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config selects the directories a FileRepo loads trust material from.
//
// TrustedDir is required; CADir and CRLDir are optional. An empty CRLDir
// means no revocation data, which disables revocation checking per the
// validator's policy.
type Config struct {
	// TrustedDir holds root certificates that become trust anchors.
	TrustedDir string `json:"trustedDir" yaml:"trustedDir"`

	// CADir holds intermediate CA certificates used during path construction.
	CADir string `json:"caDir,omitempty" yaml:"caDir,omitempty"`

	// CRLDir holds certificate revocation lists.
	CRLDir string `json:"crlDir,omitempty" yaml:"crlDir,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file
// extension. Extension matching is case-insensitive; anything that is not
// .yaml or .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads repository configuration from a JSON or YAML file.
//
// The file format is detected from the extension (.json, .yaml, .yml). A
// configuration without a trusted-roots directory is rejected, since a
// repository that can never produce a trust anchor is a deployment fault
// rather than a negative validation result.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	if config.TrustedDir == "" {
		return nil, fmt.Errorf("config %s: trustedDir is required", configPath)
	}

	return config, nil
}

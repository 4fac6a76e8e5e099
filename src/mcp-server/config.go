// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
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

// configSchema is the JSON Schema that JSON configuration files are checked
// against before unmarshaling, so malformed deployments fail at startup with
// a precise message instead of odd tool behavior later.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "defaults": {
      "type": "object",
      "properties": {
        "format": {"type": "string", "enum": ["text", "tree", "table", "json"]},
        "maxPathDepth": {"type": "integer", "minimum": 1}
      },
      "additionalProperties": false
    },
    "repository": {
      "type": "object",
      "properties": {
        "trustedDir": {"type": "string"},
        "caDir": {"type": "string"},
        "crlDir": {"type": "string"}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

// Config represents the MCP server configuration structure.
// It contains default settings for validation output and the trust store
// directories the validation tools fall back to when a call does not name
// its own.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_X509V_CONFIG_FILE environment variable, with defaults applied for any
// missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for validation operations
	Defaults struct {
		// Format: Default path rendering format for tool output
		Format string `json:"format" yaml:"format"`
		// MaxPathDepth: Maximum certificate path length during construction
		MaxPathDepth int `json:"maxPathDepth" yaml:"maxPathDepth"`
	} `json:"defaults" yaml:"defaults"`

	// Repository: Trust store directories used when a tool call omits them
	Repository struct {
		// TrustedDir: Directory of trusted root certificates
		TrustedDir string `json:"trustedDir,omitempty" yaml:"trustedDir,omitempty"`
		// CADir: Directory of intermediate CA certificates
		CADir string `json:"caDir,omitempty" yaml:"caDir,omitempty"`
		// CRLDir: Directory of certificate revocation lists
		CRLDir string `json:"crlDir,omitempty" yaml:"crlDir,omitempty"`
	} `json:"repository" yaml:"repository"`
}

// detectConfigFormat determines the configuration file format based on file
// extension. It supports .json, .yaml, and .yml extensions; matching is
// case-insensitive for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified
// format. JSON input is validated against configSchema first.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		result, err := gojsonschema.Validate(
			gojsonschema.NewStringLoader(configSchema),
			gojsonschema.NewBytesLoader(data),
		)
		if err != nil {
			return fmt.Errorf("failed to schema-check config file: %w", err)
		}
		if !result.Valid() {
			var details []string
			for _, desc := range result.Errors() {
				details = append(details, desc.String())
			}
			return fmt.Errorf("invalid config file: %s", strings.Join(details, "; "))
		}

		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or
// applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_X509V_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.Format = "text"
	config.Defaults.MaxPathDepth = 10

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv("MCP_X509V_CONFIG_FILE")
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.Format == "" {
			config.Defaults.Format = "text"
		}
		if config.Defaults.MaxPathDepth <= 0 {
			config.Defaults.MaxPathDepth = 10
		}
	}

	return config, nil
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package repo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/repo"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantErr  bool
		testFunc func(t *testing.T, cfg *repo.Config)
	}{
		{
			name: "JSON Config",
			file: "repo.json",
			content: `{
  "trustedDir": "/etc/pki/trusted",
  "caDir": "/etc/pki/ca",
  "crlDir": "/etc/pki/crl"
}`,
			testFunc: func(t *testing.T, cfg *repo.Config) {
				assert.Equal(t, "/etc/pki/trusted", cfg.TrustedDir)
				assert.Equal(t, "/etc/pki/ca", cfg.CADir)
				assert.Equal(t, "/etc/pki/crl", cfg.CRLDir)
			},
		},
		{
			name: "YAML Config",
			file: "repo.yaml",
			content: `trustedDir: /etc/pki/trusted
caDir: /etc/pki/ca
`,
			testFunc: func(t *testing.T, cfg *repo.Config) {
				assert.Equal(t, "/etc/pki/trusted", cfg.TrustedDir)
				assert.Equal(t, "/etc/pki/ca", cfg.CADir)
				assert.Empty(t, cfg.CRLDir)
			},
		},
		{
			name: "YML Extension Uppercase",
			file: "repo.YML",
			content: `trustedDir: /etc/pki/trusted
`,
			testFunc: func(t *testing.T, cfg *repo.Config) {
				assert.Equal(t, "/etc/pki/trusted", cfg.TrustedDir)
			},
		},
		{
			name:    "Missing Trusted Dir Is Rejected",
			file:    "repo.json",
			content: `{"caDir": "/etc/pki/ca"}`,
			wantErr: true,
		},
		{
			name:    "Malformed JSON",
			file:    "repo.json",
			content: `{"trustedDir": `,
			wantErr: true,
		},
		{
			name:    "Malformed YAML",
			file:    "repo.yaml",
			content: "trustedDir: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := repo.LoadConfig(writeConfig(t, tt.file, tt.content))

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.testFunc != nil {
				tt.testFunc(t, cfg)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := repo.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

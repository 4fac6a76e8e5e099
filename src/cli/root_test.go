// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/testpki"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/logger"
)

// resetFlags restores the package-level flag state between tests.
func resetFlags() {
	configFile = ""
	trustedDir = ""
	caDir = ""
	crlDir = ""
	atTime = ""
	format = "text"
	outputFile = ""
	verbose = false
	ExitCode = 0
	OperationPerformed = false
}

// cliFixture is an on-disk trust store plus a chain file ready for execCli.
type cliFixture struct {
	trustedDir, caDir, chainFile string
}

func newCliFixture(t *testing.T) cliFixture {
	t.Helper()

	d := x509certs.New()
	root := testpki.NewRootCA(t, "CLI Root CA")
	inter := root.NewIntermediate(t, "CLI Intermediate CA")
	leaf := inter.NewLeaf(t, "cli.example.com")

	base := t.TempDir()
	f := cliFixture{
		trustedDir: filepath.Join(base, "trusted"),
		caDir:      filepath.Join(base, "ca"),
		chainFile:  filepath.Join(base, "chain.pem"),
	}

	require.NoError(t, os.Mkdir(f.trustedDir, 0o700))
	require.NoError(t, os.Mkdir(f.caDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(f.trustedDir, "root.pem"), d.EncodePEM(root.Cert), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(f.caDir, "inter.pem"), d.EncodePEM(inter.Cert), 0o600))
	require.NoError(t, os.WriteFile(f.chainFile, d.EncodePEM(leaf.Cert), 0o600))

	return f
}

func captureLogger() (*logger.CLILogger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)
	return log, &buf
}

func TestExecCli(t *testing.T) {
	t.Run("Valid Chain", func(t *testing.T) {
		resetFlags()
		f := newCliFixture(t)
		trustedDir = f.trustedDir
		caDir = f.caDir
		format = "tree"

		log, buf := captureLogger()
		require.NoError(t, execCli(context.Background(), f.chainFile, log))

		assert.Equal(t, 0, ExitCode)
		assert.True(t, OperationPerformed)
		assert.Contains(t, buf.String(), "Status:  valid")
		assert.Contains(t, buf.String(), "cli.example.com")
	})

	t.Run("Untrusted Chain Sets Exit Code One", func(t *testing.T) {
		resetFlags()
		f := newCliFixture(t)
		other := newCliFixture(t)

		// Trust store from an unrelated hierarchy.
		trustedDir = other.trustedDir

		log, buf := captureLogger()
		require.NoError(t, execCli(context.Background(), f.chainFile, log))

		assert.Equal(t, 1, ExitCode)
		assert.Contains(t, buf.String(), "Status:  invalid")
	})

	t.Run("Missing Trusted Dir Is A Config Error", func(t *testing.T) {
		resetFlags()
		f := newCliFixture(t)

		log, _ := captureLogger()
		err := execCli(context.Background(), f.chainFile, log)

		require.Error(t, err)
		assert.Equal(t, 2, ExitCode)
		assert.False(t, OperationPerformed)
	})

	t.Run("Unreadable Chain File Is A Config Error", func(t *testing.T) {
		resetFlags()
		f := newCliFixture(t)
		trustedDir = f.trustedDir

		log, _ := captureLogger()
		err := execCli(context.Background(), filepath.Join(t.TempDir(), "absent.pem"), log)

		require.Error(t, err)
		assert.Equal(t, 2, ExitCode)
	})

	t.Run("Bad At Flag Is A Config Error", func(t *testing.T) {
		resetFlags()
		f := newCliFixture(t)
		trustedDir = f.trustedDir
		atTime = "yesterday"

		log, _ := captureLogger()
		err := execCli(context.Background(), f.chainFile, log)

		require.Error(t, err)
		assert.Equal(t, 2, ExitCode)
	})

	t.Run("Output File", func(t *testing.T) {
		resetFlags()
		f := newCliFixture(t)
		trustedDir = f.trustedDir
		caDir = f.caDir
		format = "json"
		outputFile = filepath.Join(t.TempDir(), "result.json")

		log, buf := captureLogger()
		require.NoError(t, execCli(context.Background(), f.chainFile, log))

		assert.Empty(t, buf.String())
		data, err := os.ReadFile(outputFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"pathLength": 3`)
	})
}

func TestBuildRepo(t *testing.T) {
	t.Run("Flags Override Config File", func(t *testing.T) {
		resetFlags()
		dir := t.TempDir()

		cfgPath := filepath.Join(dir, "repo.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("trustedDir: /from/config\ncaDir: /from/config/ca\n"), 0o600))

		configFile = cfgPath
		trustedDir = "/from/flag"

		r, err := buildRepo()
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", r.TrustedDir)
		assert.Equal(t, "/from/config/ca", r.CADir)
	})

	t.Run("No Trusted Dir Anywhere", func(t *testing.T) {
		resetFlags()

		_, err := buildRepo()
		assert.Error(t, err)
	})
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	x509certs "github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/pathbuild"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/validator"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/logger"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/repo"
	"github.com/spf13/cobra"
)

var (
	configFile string
	trustedDir string
	caDir      string
	crlDir     string
	atTime     string
	format     string
	outputFile string
	verbose    bool
)

// ExitCode is the process exit code the caller should use after Execute
// returns: 0 for a valid chain, 1 for invalid or indeterminate, 2 for
// configuration errors.
var ExitCode int

// OperationPerformed indicates whether a validation was actually run.
var OperationPerformed bool

// Execute runs the root command, validating the certificate chain named on
// the command line against the configured trust store.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:     "x509-trust-validator [CHAIN_FILE]",
		Short:   "X.509 certificate chain trust validator",
		Long: "Validates that the target certificate in CHAIN_FILE chains to a trusted root,\n" +
			"honoring intermediate CA certificates and CRLs from the trust store directories.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd.Context(), args[0], log)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "repository config file (JSON or YAML)")
	rootCmd.Flags().StringVar(&trustedDir, "trusted-dir", "", "directory of trusted root certificates")
	rootCmd.Flags().StringVar(&caDir, "ca-dir", "", "directory of intermediate CA certificates")
	rootCmd.Flags().StringVar(&crlDir, "crl-dir", "", "directory of certificate revocation lists")
	rootCmd.Flags().StringVar(&atTime, "at", "", "verification time in RFC3339 format (default: now)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: 'text', 'tree', 'table', or 'json'")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log path-building diagnostics")

	return rootCmd.ExecuteContext(ctx)
}

// execCli reads and decodes the chain file, assembles the repository, runs
// validation, and renders the result in the requested format.
func execCli(ctx context.Context, chainFile string, log logger.Logger) error {
	repository, err := buildRepo()
	if err != nil {
		ExitCode = 2
		return err
	}

	chainData, err := os.ReadFile(chainFile)
	if err != nil {
		ExitCode = 2
		return fmt.Errorf("reading chain file: %w", err)
	}

	decoder := x509certs.New()
	certificates, err := decoder.DecodeMultiple(chainData)
	if err != nil {
		ExitCode = 2
		return fmt.Errorf("decoding chain file: %w", err)
	}

	v := validator.New(repository, diagnosticsSink(log))
	if atTime != "" {
		at, err := time.Parse(time.RFC3339, atTime)
		if err != nil {
			ExitCode = 2
			return fmt.Errorf("parsing --at: %w", err)
		}
		v.At = at
	}

	OperationPerformed = true

	outcome, err := v.Validate(ctx, certificates)
	if err != nil {
		// Configuration errors are fatal and must stay distinguishable from
		// a negative trust result.
		ExitCode = 2
		return err
	}

	var path *pathbuild.Path
	if outcome.Status == validator.StatusValid {
		if path, err = v.BuildPath(ctx, certificates); err != nil {
			ExitCode = 2
			return err
		}
	} else {
		ExitCode = 1
	}

	rendered, err := renderOutcome(outcome, path)
	if err != nil {
		ExitCode = 2
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
			ExitCode = 2
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}

	log.Printf("%s", rendered)
	return nil
}

// buildRepo assembles the file-system repository from the config file or the
// directory flags. Flags override config file values.
func buildRepo() (*repo.FileRepo, error) {
	cfg := &repo.Config{}

	if configFile != "" {
		loaded, err := repo.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if trustedDir != "" {
		cfg.TrustedDir = trustedDir
	}
	if caDir != "" {
		cfg.CADir = caDir
	}
	if crlDir != "" {
		cfg.CRLDir = crlDir
	}

	if cfg.TrustedDir == "" {
		return nil, errors.New("no trusted root directory: set --trusted-dir or provide --config")
	}

	return repo.NewFileRepo(cfg), nil
}

// renderOutcome formats the validation outcome, appending the accepted path
// in the requested representation when one exists.
func renderOutcome(outcome validator.Outcome, path *pathbuild.Path) (string, error) {
	header := fmt.Sprintf("Status:  %s\nReasons: %v\n", outcome.Status, outcome.Reasons)

	if path == nil {
		return header, nil
	}

	switch format {
	case "tree":
		return header + "\n" + path.RenderTree(), nil
	case "table":
		return header + "\n" + path.RenderTable(), nil
	case "json":
		data, err := path.ToJSON()
		if err != nil {
			return "", fmt.Errorf("rendering JSON: %w", err)
		}
		return string(data), nil
	default:
		return header, nil
	}
}

// diagnosticsSink returns the logger the validator should report rejected
// candidates to, or nil when not running verbose.
func diagnosticsSink(log logger.Logger) logger.Logger {
	if verbose {
		return log
	}
	return nil
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/anchor"
	x509certs "github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/validator"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/logger"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/repo"
	"github.com/mark3labs/mcp-go/mcp"
)

// readCertInput resolves the certificate parameter, accepting either a file
// path or base64-encoded certificate data.
func readCertInput(certInput string) ([]byte, error) {
	if fileData, err := os.ReadFile(certInput); err == nil {
		return fileData, nil
	}
	if decoded, err := base64.StdEncoding.DecodeString(certInput); err == nil {
		return decoded, nil
	}
	return nil, fmt.Errorf("not a valid file path or base64 data")
}

// handleValidateCertChain validates a certificate chain against the trust
// store directories and reports the outcome with its reason codes, plus the
// accepted path in the requested rendering when trust was established.
//
// A chain that fails validation is a successful tool call with a negative
// outcome; only repository or parameter faults surface as tool errors.
func handleValidateCertChain(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	trustedDir := request.GetString("trusted_dir", config.Repository.TrustedDir)
	if trustedDir == "" {
		return mcp.NewToolResultError("no trusted root directory: pass trusted_dir or configure the server"), nil
	}

	certData, err := readCertInput(certInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	decoder := x509certs.New()
	certificates, err := decoder.DecodeMultiple(certData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate chain: %v", err)), nil
	}

	repository := repo.NewFileRepo(&repo.Config{
		TrustedDir: trustedDir,
		CADir:      request.GetString("ca_dir", config.Repository.CADir),
		CRLDir:     request.GetString("crl_dir", config.Repository.CRLDir),
	})

	v := validator.New(repository, logger.NewMCPLogger(nil, true))
	v.MaxDepth = request.GetInt("max_path_depth", config.Defaults.MaxPathDepth)

	if at := request.GetString("at", ""); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid 'at' time: %v", err)), nil
		}
		v.At = parsed
	}

	outcome, err := v.Validate(ctx, certificates)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation aborted: %v", err)), nil
	}

	result := map[string]any{
		"status":  outcome.Status.String(),
		"reasons": outcome.Reasons,
	}

	if outcome.Status == validator.StatusValid {
		path, err := v.BuildPath(ctx, certificates)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("validation aborted: %v", err)), nil
		}

		switch request.GetString("format", config.Defaults.Format) {
		case "tree":
			result["path"] = path.RenderTree()
		case "table":
			result["path"] = path.RenderTable()
		case "json":
			pathJSON, err := path.ToJSON()
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to render path: %v", err)), nil
			}
			result["path"] = json.RawMessage(pathJSON)
		default:
			var subjects []string
			for _, cert := range path.All() {
				subjects = append(subjects, cert.Subject.CommonName)
			}
			result["path"] = subjects
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

// handleInspectCertChain decodes a certificate chain and summarizes each
// certificate without performing any trust decision.
func handleInspectCertChain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	certData, err := readCertInput(certInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	decoder := x509certs.New()
	certificates, err := decoder.DecodeMultiple(certData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate chain: %v", err)), nil
	}

	type certSummary struct {
		Index        int       `json:"index"`
		Subject      string    `json:"subject"`
		Issuer       string    `json:"issuer"`
		SerialNumber string    `json:"serialNumber"`
		NotBefore    time.Time `json:"notBefore"`
		NotAfter     time.Time `json:"notAfter"`
		IsCA         bool      `json:"isCA"`
	}

	summaries := make([]certSummary, len(certificates))
	for i, cert := range certificates {
		summaries[i] = certSummary{
			Index:        i,
			Subject:      cert.Subject.CommonName,
			Issuer:       cert.Issuer.CommonName,
			SerialNumber: cert.SerialNumber.String(),
			NotBefore:    cert.NotBefore,
			NotAfter:     cert.NotAfter,
			IsCA:         cert.IsCA,
		}
	}

	data, err := json.MarshalIndent(map[string]any{
		"chainLength":  len(certificates),
		"certificates": summaries,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

// handleListTrustAnchors loads the trusted root directory and reports the
// deduplicated anchor set it would produce for validation.
func handleListTrustAnchors(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	trustedDir := request.GetString("trusted_dir", config.Repository.TrustedDir)
	if trustedDir == "" {
		return mcp.NewToolResultError("no trusted root directory: pass trusted_dir or configure the server"), nil
	}

	repository := repo.NewFileRepo(&repo.Config{TrustedDir: trustedDir})
	roots, err := repository.TrustedCACerts()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load trusted roots: %v", err)), nil
	}

	anchors := anchor.BuildSet(roots)

	type anchorSummary struct {
		Subject      string    `json:"subject"`
		SerialNumber string    `json:"serialNumber"`
		NotAfter     time.Time `json:"notAfter"`
	}

	summaries := make([]anchorSummary, 0, anchors.Len())
	for _, a := range anchors.All() {
		summaries = append(summaries, anchorSummary{
			Subject:      a.Subject(),
			SerialNumber: a.Cert.SerialNumber.String(),
			NotAfter:     a.Cert.NotAfter,
		})
	}

	data, err := json.MarshalIndent(map[string]any{
		"anchorCount": anchors.Len(),
		"anchors":     summaries,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates the MCP tool definitions for trust chain validation.
//
// The function defines the following tools:
//   - validate_cert_chain: Validates a certificate chain against the trust store
//   - inspect_cert_chain: Decodes and summarizes a certificate chain without validating it
//   - list_trust_anchors: Lists the trust anchors the configured store would produce
//
// Directory parameters default to the server configuration so a deployment
// can pin its trust store centrally while still allowing per-call overrides.
func createTools(config *Config) (validate, inspect, anchors mcp.Tool) {
	validate = mcp.NewTool("validate_cert_chain",
		mcp.WithDescription("Validate an X.509 certificate chain against a trusted root store, honoring intermediate CAs and CRLs"),
		mcp.WithString("certificate",
			mcp.Required(),
			mcp.Description("Certificate chain file path or base64-encoded certificate data (target certificate first)"),
		),
		mcp.WithString("trusted_dir",
			mcp.Description("Directory of trusted root certificates (default: server configuration)"),
			mcp.DefaultString(config.Repository.TrustedDir),
		),
		mcp.WithString("ca_dir",
			mcp.Description("Directory of intermediate CA certificates (default: server configuration)"),
			mcp.DefaultString(config.Repository.CADir),
		),
		mcp.WithString("crl_dir",
			mcp.Description("Directory of certificate revocation lists; empty disables revocation checking (default: server configuration)"),
			mcp.DefaultString(config.Repository.CRLDir),
		),
		mcp.WithString("at",
			mcp.Description("Verification time in RFC3339 format (default: now)"),
		),
		mcp.WithString("format",
			mcp.Description("Path rendering format: 'text', 'tree', 'table', or 'json' (default: "+config.Defaults.Format+")"),
			mcp.DefaultString(config.Defaults.Format),
		),
		mcp.WithNumber("max_path_depth",
			mcp.Description(fmt.Sprintf("Maximum certificate path length (default: %d)", config.Defaults.MaxPathDepth)),
			mcp.DefaultNumber(float64(config.Defaults.MaxPathDepth)),
		),
	)

	inspect = mcp.NewTool("inspect_cert_chain",
		mcp.WithDescription("Decode an X.509 certificate chain and summarize subjects, issuers, and validity without validating trust"),
		mcp.WithString("certificate",
			mcp.Required(),
			mcp.Description("Certificate chain file path or base64-encoded certificate data"),
		),
	)

	anchors = mcp.NewTool("list_trust_anchors",
		mcp.WithDescription("List the deduplicated trust anchors a trusted root directory would produce"),
		mcp.WithString("trusted_dir",
			mcp.Description("Directory of trusted root certificates (default: server configuration)"),
			mcp.DefaultString(config.Repository.TrustedDir),
		),
	)

	return validate, inspect, anchors
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var serverName = "X.509 Trust Chain Validator" // MCP server name
var appVersion = version.Version               // default version

// GetVersion returns the current version of the MCP server.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with trust chain validation tools.
// It loads configuration from the MCP_X509V_CONFIG_FILE environment variable
// unless a config path was already applied by the caller.
func Run(ver string) error {
	if ver != "" {
		appVersion = ver
	}

	// Load configuration
	config, err := loadConfig(os.Getenv("MCP_X509V_CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Create MCP server
	s := server.NewMCPServer(
		serverName,
		appVersion,
		server.WithToolCapabilities(true),
	)

	// Define and register tools
	validateTool, inspectTool, anchorsTool := createTools(config)

	s.AddTool(validateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateCertChain(ctx, request, config)
	})
	s.AddTool(inspectTool, handleInspectCertChain)
	s.AddTool(anchorsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListTrustAnchors(ctx, request, config)
	})

	// Start server
	return server.ServeStdio(s)
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server is the Model Context Protocol front end of the X.509 trust
// validator. It serves the validate_cert_chain, inspect_cert_chain, and
// list_trust_anchors tools over stdio.
package main

import (
	"fmt"
	"os"

	mcpserver "github.com/H0llyW00dzZ/x509-trust-validator/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() {
	if err := mcpserver.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

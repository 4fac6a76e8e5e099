// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-trust-validator is a command-line tool for validating X.509
// certificate chains against a directory-backed trust store.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-trust-validator/cmd/x509-trust-validator@latest
//
// # Usage
//
//	x509-trust-validator CHAIN_FILE [FLAGS]
//
// # Flags
//
//	-c, --config       Repository config file (JSON or YAML)
//	    --trusted-dir  Directory of trusted root certificates
//	    --ca-dir       Directory of intermediate CA certificates
//	    --crl-dir      Directory of certificate revocation lists
//	    --at           Verification time in RFC3339 format (default: now)
//	-f, --format       Output format: 'text', 'tree', 'table', or 'json'
//	-o, --output       Destination file (default: stdout)
//	-v, --verbose      Log path-building diagnostics
//
// # Exit Codes
//
//	0  chain is valid (issuer trust established)
//	1  chain is invalid or the request was indeterminate
//	2  configuration error (unreadable trust store, bad flags)
//
// # Examples
//
//	x509-trust-validator server-chain.pem --trusted-dir /etc/pki/trusted
//	x509-trust-validator server-chain.pem -c repo.yaml -f tree
package main

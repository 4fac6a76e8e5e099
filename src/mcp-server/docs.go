// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides a Model Context Protocol server that exposes
// X.509 trust chain validation to automation clients over stdio. It offers
// tools to validate a certificate chain against a configured trust store,
// inspect a chain without validating it, and list the trust anchors a store
// would produce. Server configuration is read from a JSON or YAML file and
// JSON configs are schema-checked before use.
package mcpserver

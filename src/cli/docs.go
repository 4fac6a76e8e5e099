// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the command-line interface for the X.509 trust
// validator. It reads a certificate chain file (target certificate first),
// loads trust material from the configured repository directories, runs the
// chain validation, and reports the outcome in text, tree, table, or JSON
// form.
package cli

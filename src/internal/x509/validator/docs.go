// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package validator orchestrates certificate-chain trust validation. Given a
// parsed certificate list (target certificate first) it loads trust material
// from a Repository collaborator, builds the trust anchor set, runs the
// backtracking path builder, and folds the result into an Outcome of
// Valid, Invalid, or Indeterminate with stable machine-readable reason codes.
//
// The package distinguishes two failure classes strictly: a chain that does
// not reach a trust anchor is a normal negative outcome, while a repository
// or parameter fault is a *ConfigError that aborts the call. Operators can
// therefore tell "our trust store is broken" apart from "this certificate is
// untrusted".
package validator

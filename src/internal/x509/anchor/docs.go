// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package anchor provides the trust anchor set used to terminate certificate
// path construction. An anchor is a certificate designated as axiomatically
// trusted; no issuer chain is required above it and no name constraints are
// attached. Anchors are deduplicated by their encoded byte form, so building
// a set from repeated inputs yields one anchor per distinct certificate.
package anchor

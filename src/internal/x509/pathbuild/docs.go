// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pathbuild implements [PKIX]-style certificate path construction and
// verification. Given a target certificate, pools of candidate issuer
// certificates, a trust anchor set, and an optional set of [CRL]s, it attempts
// to build at least one cryptographically valid path from the target to an
// anchor using depth-first search with explicit backtracking over candidate
// issuers. Backtracking matters because a pool may contain several
// certificates with the same subject (cross-signed or rotated CAs) of which
// only some lead to a valid, non-revoked, non-expired chain.
//
// Revocation policy follows the repository contract: an empty CRL set
// disables revocation checking for the whole build; a non-empty set requires
// every non-anchor certificate on the path to be covered by a fresh,
// correctly signed CRL from its issuer.
//
// A failed build is a normal negative result (*PathError), never a
// configuration fault; structurally invalid parameters are reported as
// *ConfigError so callers can tell a broken trust store apart from an
// untrusted certificate.
//
// [PKIX]: https://grokipedia.com/page/Public_key_infrastructure
// [CRL]: https://grokipedia.com/page/Certificate_revocation_list
package pathbuild

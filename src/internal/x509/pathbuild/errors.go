// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic reason identifiers attached to a negative build result.
// These are stable machine-readable codes, not display strings.
const (
	// ReasonNoIssuerFound means no candidate issuer matched a certificate's
	// issuer name in any pool or in the anchor set.
	ReasonNoIssuerFound = "no-issuer-found"

	// ReasonSignatureInvalid means a candidate issuer matched by name but its
	// public key did not verify the certificate's signature.
	ReasonSignatureInvalid = "signature-invalid"

	// ReasonCertExpired means a certificate's validity window did not cover
	// the verification time.
	ReasonCertExpired = "cert-expired"

	// ReasonCertRevoked means a certificate on a candidate path appears on a
	// fresh CRL issued by its issuer.
	ReasonCertRevoked = "cert-revoked"

	// ReasonRevocationUndetermined means revocation checking was enabled but
	// no usable CRL covered a certificate on a candidate path.
	ReasonRevocationUndetermined = "revocation-undetermined"

	// ReasonPathTooLong means path construction hit the maximum chain length
	// bound before reaching a trust anchor.
	ReasonPathTooLong = "path-too-long"

	// ReasonNoTrustAnchors means the trust anchor set was empty, so no path
	// could terminate.
	ReasonNoTrustAnchors = "no-trust-anchors"
)

var (
	// ErrNoPath is the sentinel matched by errors.Is for a negative build
	// result: no chain could be constructed from the target to any trust
	// anchor. This is an expected outcome, never a configuration fault.
	ErrNoPath = errors.New("pathbuild: no path to a trusted anchor")

	// ErrInvalidParams indicates structurally invalid build parameters
	// (nil target or missing anchor set). This is a configuration-level
	// failure, distinct from an untrusted certificate.
	ErrInvalidParams = errors.New("pathbuild: invalid build parameters")
)

// PathError is the negative result of a path build. It carries deduplicated
// diagnostic reason codes describing why candidate paths were rejected.
//
// PathError matches ErrNoPath under errors.Is so callers can fold it into a
// boolean trust decision without losing the diagnostics.
type PathError struct {
	Reasons []string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrNoPath.Error()
	}
	return fmt.Sprintf("%s (%s)", ErrNoPath.Error(), strings.Join(e.Reasons, ", "))
}

// Is reports whether target is ErrNoPath, allowing errors.Is matching.
func (e *PathError) Is(target error) bool { return target == ErrNoPath }

// add records a reason code, keeping the list deduplicated and ordered by
// first occurrence.
func (e *PathError) add(reason string) {
	for _, r := range e.Reasons {
		if r == reason {
			return
		}
	}
	e.Reasons = append(e.Reasons, reason)
}

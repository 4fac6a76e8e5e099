// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild

import (
	"crypto/x509"
	"time"
)

// RevocationStatus is the outcome of checking one certificate against the
// CRL set.
type RevocationStatus int

const (
	// RevocationGood means a fresh CRL from the certificate's issuer was found
	// and the certificate's serial number is not listed on it.
	RevocationGood RevocationStatus = iota

	// RevocationRevoked means the certificate's serial number appears on a
	// fresh CRL issued by its issuer.
	RevocationRevoked

	// RevocationUndetermined means no CRL from the certificate's issuer was
	// found within its validity window, so revocation status cannot be
	// established.
	RevocationUndetermined
)

// String returns the string representation of RevocationStatus.
func (s RevocationStatus) String() string {
	switch s {
	case RevocationGood:
		return "good"
	case RevocationRevoked:
		return "revoked"
	case RevocationUndetermined:
		return "undetermined"
	default:
		return "unknown"
	}
}

// CRLSet is a read-only collection of certificate revocation lists indexed by
// issuer name. Each list is scoped to one issuing CA and carries a
// ThisUpdate/NextUpdate validity window.
type CRLSet struct {
	lists    []*x509.RevocationList
	byIssuer map[string][]*x509.RevocationList
}

// NewCRLSet creates a CRL set from the given revocation lists.
func NewCRLSet(crls []*x509.RevocationList) *CRLSet {
	s := &CRLSet{byIssuer: make(map[string][]*x509.RevocationList, len(crls))}
	for _, crl := range crls {
		if crl == nil {
			continue
		}
		s.lists = append(s.lists, crl)
		s.byIssuer[string(crl.RawIssuer)] = append(s.byIssuer[string(crl.RawIssuer)], crl)
	}
	return s
}

// Empty reports whether the set contains no revocation lists.
//
// An empty set disables revocation checking for the validation call; absence
// of CRL data is an explicit policy choice, not a trust failure.
func (s *CRLSet) Empty() bool { return s == nil || len(s.lists) == 0 }

// Len returns the number of revocation lists in the set.
func (s *CRLSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lists)
}

// Status checks one certificate against the set at the given time.
//
// The issuer certificate is required so the CRL signature can be verified;
// lists that fail signature verification or fall outside their validity
// window are ignored. With no usable list from the certificate's issuer the
// status is RevocationUndetermined.
func (s *CRLSet) Status(cert, issuer *x509.Certificate, at time.Time) RevocationStatus {
	status := RevocationUndetermined

	for _, crl := range s.byIssuer[string(cert.RawIssuer)] {
		if at.Before(crl.ThisUpdate) || at.After(crl.NextUpdate) {
			continue
		}
		if err := crl.CheckSignatureFrom(issuer); err != nil {
			continue
		}

		status = RevocationGood
		for _, entry := range crl.RevokedCertificateEntries {
			if entry.SerialNumber.Cmp(cert.SerialNumber) == 0 {
				return RevocationRevoked
			}
		}
	}

	return status
}

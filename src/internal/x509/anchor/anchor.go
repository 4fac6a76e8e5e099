// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package anchor

import (
	"crypto/sha256"
	"crypto/x509"
)

// Anchor is a certificate treated as axiomatically trustworthy.
//
// It carries no additional name-constraint data; the certificate alone
// terminates chain validation.
type Anchor struct {
	Cert *x509.Certificate
}

// Subject returns the anchor certificate's subject common name.
func (a *Anchor) Subject() string { return a.Cert.Subject.CommonName }

// Set is a deduplicated collection of trust anchors.
//
// Identity for deduplication is the certificate's encoded byte form, not its
// subject name, so rotated or cross-signed roots with identical subjects are
// kept as distinct anchors.
//
// A Set is immutable after BuildSet returns and safe for concurrent reads.
type Set struct {
	byID      map[[sha256.Size]byte]*Anchor
	bySubject map[string][]*Anchor
	anchors   []*Anchor
}

// BuildSet converts trusted root certificates into a trust anchor set.
//
// One anchor is produced per distinct input certificate; duplicates are
// dropped. An empty or nil input yields an empty set, which later causes
// path building to fail with a negative result rather than an error.
func BuildSet(trustedRoots []*x509.Certificate) *Set {
	s := &Set{
		byID:      make(map[[sha256.Size]byte]*Anchor, len(trustedRoots)),
		bySubject: make(map[string][]*Anchor, len(trustedRoots)),
	}

	for _, cert := range trustedRoots {
		if cert == nil {
			continue
		}

		id := sha256.Sum256(cert.Raw)
		if _, ok := s.byID[id]; ok {
			continue
		}

		a := &Anchor{Cert: cert}
		s.byID[id] = a
		s.bySubject[string(cert.RawSubject)] = append(s.bySubject[string(cert.RawSubject)], a)
		s.anchors = append(s.anchors, a)
	}

	return s
}

// Contains reports whether the given certificate is itself a trust anchor.
func (s *Set) Contains(cert *x509.Certificate) bool {
	_, ok := s.byID[sha256.Sum256(cert.Raw)]
	return ok
}

// BySubject returns the anchors whose subject matches the given raw DER name.
//
// Multiple anchors may share a subject (rotated roots); callers must try each.
func (s *Set) BySubject(rawName []byte) []*Anchor {
	return s.bySubject[string(rawName)]
}

// All returns every anchor in the set. The returned slice must not be modified.
func (s *Set) All() []*Anchor { return s.anchors }

// Len returns the number of distinct anchors in the set.
func (s *Set) Len() int { return len(s.anchors) }

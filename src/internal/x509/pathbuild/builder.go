// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild

import (
	"bytes"
	"crypto/sha256"
	"crypto/x509"
	"time"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/anchor"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/logger"
)

// DefaultMaxDepth bounds the length of a constructed path, anchors excluded.
// The bound guarantees termination on malformed or cyclic certificate pools.
const DefaultMaxDepth = 10

// Path is an ordered certificate sequence, target first, each certificate
// issued by the subject of the next, terminating at the trust anchor that
// issued the last certificate. When the target is itself an anchor the path
// holds just the target.
type Path struct {
	Certs  []*x509.Certificate
	Anchor *anchor.Anchor
}

// Target returns the end-entity certificate the path was built for.
func (p *Path) Target() *x509.Certificate { return p.Certs[0] }

// Len returns the number of certificates in the path, anchor included.
func (p *Path) Len() int {
	if p.Anchor != nil && len(p.Certs) > 0 && !p.Certs[len(p.Certs)-1].Equal(p.Anchor.Cert) {
		return len(p.Certs) + 1
	}
	return len(p.Certs)
}

// All returns the path certificates followed by the anchor certificate.
func (p *Path) All() []*x509.Certificate {
	all := append([]*x509.Certificate(nil), p.Certs...)
	if p.Anchor != nil && (len(all) == 0 || !all[len(all)-1].Equal(p.Anchor.Cert)) {
		all = append(all, p.Anchor.Cert)
	}
	return all
}

// Builder constructs and verifies certificate paths to a trust anchor set.
//
// All inputs are read-only for the duration of one Build call; a Builder
// holds no mutable state of its own, so distinct validation calls may use
// distinct Builders concurrently over the same underlying pools.
type Builder struct {
	// Anchors is the trust anchor set paths must terminate at. Required.
	Anchors *anchor.Set

	// Intermediates holds intermediate CA certificates from the repository.
	Intermediates *Pool

	// RequestCerts holds certificates supplied alongside the validation
	// request; they may contain further intermediates.
	RequestCerts *Pool

	// CRLs is the revocation data for this call. An empty set disables
	// revocation checking entirely.
	CRLs *CRLSet

	// At is the verification time. The zero value means time.Now() at Build.
	At time.Time

	// MaxDepth bounds path length; zero means DefaultMaxDepth.
	MaxDepth int

	// Log receives informational diagnostics about rejected candidates.
	// May be nil.
	Log logger.Logger
}

// Build attempts to construct one cryptographically valid path from the
// target certificate to a trust anchor.
//
// The negative outcome is a *PathError (matching ErrNoPath under errors.Is)
// carrying machine-readable reasons; structurally invalid parameters return
// ErrInvalidParams. Build never mutates its inputs.
func (b *Builder) Build(target *x509.Certificate) (*Path, error) {
	if target == nil || b.Anchors == nil {
		return nil, ErrInvalidParams
	}

	w := &walker{
		builder: b,
		at:      b.At,
		depth:   b.MaxDepth,
		diag:    &PathError{},
		seen:    make(map[[sha256.Size]byte]bool),
	}
	if w.at.IsZero() {
		w.at = time.Now()
	}
	if w.depth <= 0 {
		w.depth = DefaultMaxDepth
	}

	if b.Anchors.Len() == 0 {
		w.diag.add(ReasonNoTrustAnchors)
		return nil, w.diag
	}

	if !w.withinValidity(target) {
		b.logf("path build: target %q outside validity window at %s", target.Subject.CommonName, w.at.Format(time.RFC3339))
		w.diag.add(ReasonCertExpired)
		return nil, w.diag
	}

	// A target that is itself a trust anchor needs no issuer chain.
	if b.Anchors.Contains(target) {
		for _, a := range b.Anchors.BySubject(target.RawSubject) {
			if a.Cert.Equal(target) {
				return &Path{Certs: []*x509.Certificate{target}, Anchor: a}, nil
			}
		}
	}

	if path := w.walk(target, []*x509.Certificate{target}); path != nil {
		return path, nil
	}

	return nil, w.diag
}

// logf forwards a diagnostic message to the configured sink, if any.
func (b *Builder) logf(format string, v ...any) {
	if b.Log != nil {
		b.Log.Printf(format, v...)
	}
}

// walker carries the mutable state of one depth-first search.
type walker struct {
	builder *Builder
	at      time.Time
	depth   int
	diag    *PathError
	seen    map[[sha256.Size]byte]bool
}

// walk extends the current candidate path from cert toward the anchor set,
// backtracking over candidate issuers until one terminates successfully.
func (w *walker) walk(cert *x509.Certificate, path []*x509.Certificate) *Path {
	matched := false

	// Anchors first: reaching one terminates the path.
	for _, a := range w.builder.Anchors.BySubject(cert.RawIssuer) {
		matched = true
		if err := cert.CheckSignatureFrom(a.Cert); err != nil {
			w.builder.logf("path build: anchor %q rejected for %q: %v", a.Subject(), cert.Subject.CommonName, err)
			w.diag.add(ReasonSignatureInvalid)
			continue
		}

		candidate := &Path{Certs: append([]*x509.Certificate(nil), path...), Anchor: a}
		if w.checkRevocation(candidate) {
			return candidate
		}
	}

	if len(path) >= w.depth {
		w.diag.add(ReasonPathTooLong)
		return nil
	}

	// Then intermediates from the repository pool and the request pool.
	candidates := w.builder.Intermediates.BySubject(cert.RawIssuer)
	candidates = append(candidates, w.builder.RequestCerts.BySubject(cert.RawIssuer)...)

	for _, issuer := range candidates {
		if issuer.Equal(cert) || w.seen[sha256.Sum256(issuer.Raw)] {
			continue
		}
		matched = true

		if !w.withinValidity(issuer) {
			w.builder.logf("path build: issuer %q outside validity window", issuer.Subject.CommonName)
			w.diag.add(ReasonCertExpired)
			continue
		}
		if err := cert.CheckSignatureFrom(issuer); err != nil {
			w.builder.logf("path build: issuer %q rejected for %q: %v", issuer.Subject.CommonName, cert.Subject.CommonName, err)
			w.diag.add(ReasonSignatureInvalid)
			continue
		}

		key := sha256.Sum256(issuer.Raw)
		w.seen[key] = true
		found := w.walk(issuer, append(path, issuer))
		delete(w.seen, key)

		if found != nil {
			return found
		}
	}

	if !matched {
		w.builder.logf("path build: no issuer candidate for %q", cert.Subject.CommonName)
		w.diag.add(ReasonNoIssuerFound)
	}

	return nil
}

// checkRevocation verifies every non-anchor certificate on a completed
// candidate path against the CRL set. With an empty set the check is
// disabled and the path is accepted as-is.
func (w *walker) checkRevocation(p *Path) bool {
	if w.builder.CRLs.Empty() {
		return true
	}

	for i, cert := range p.Certs {
		issuer := p.Anchor.Cert
		if i+1 < len(p.Certs) {
			issuer = p.Certs[i+1]
		}

		switch w.builder.CRLs.Status(cert, issuer, w.at) {
		case RevocationRevoked:
			w.builder.logf("path build: %q revoked by CRL from %q", cert.Subject.CommonName, issuer.Subject.CommonName)
			w.diag.add(ReasonCertRevoked)
			return false
		case RevocationUndetermined:
			w.builder.logf("path build: no usable CRL for %q from %q", cert.Subject.CommonName, issuer.Subject.CommonName)
			w.diag.add(ReasonRevocationUndetermined)
			return false
		}
	}

	return true
}

// withinValidity reports whether the verification time falls inside the
// certificate's validity window.
func (w *walker) withinValidity(cert *x509.Certificate) bool {
	return !w.at.Before(cert.NotBefore) && !w.at.After(cert.NotAfter)
}

// isSelfIssued reports whether a certificate's subject and issuer match.
func isSelfIssued(cert *x509.Certificate) bool {
	return bytes.Equal(cert.RawSubject, cert.RawIssuer)
}

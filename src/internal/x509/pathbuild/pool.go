// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild

import (
	"crypto/x509"
)

// Pool is a non-unique, order-irrelevant collection of certificates used as a
// lookup source during path construction. It indexes certificates by raw
// subject name so that issuer candidates can be found without scanning.
//
// A Pool is not safe for concurrent mutation; build it up front and treat it
// as read-only for the duration of a validation call.
type Pool struct {
	certs     []*x509.Certificate
	bySubject map[string][]*x509.Certificate
}

// NewPool creates a pool containing the given certificates.
func NewPool(certs ...[]*x509.Certificate) *Pool {
	p := &Pool{bySubject: make(map[string][]*x509.Certificate)}
	for _, batch := range certs {
		p.Add(batch...)
	}
	return p
}

// Add inserts certificates into the pool. Nil entries are ignored; duplicates
// are kept, matching the non-unique collection semantics of a PKIX cert store.
func (p *Pool) Add(certs ...*x509.Certificate) {
	for _, cert := range certs {
		if cert == nil {
			continue
		}
		p.certs = append(p.certs, cert)
		p.bySubject[string(cert.RawSubject)] = append(p.bySubject[string(cert.RawSubject)], cert)
	}
}

// BySubject returns all certificates whose subject matches the given raw DER
// name. The returned slice must not be modified.
func (p *Pool) BySubject(rawName []byte) []*x509.Certificate {
	if p == nil {
		return nil
	}
	return p.bySubject[string(rawName)]
}

// Certs returns every certificate in the pool. The returned slice must not be
// modified.
func (p *Pool) Certs() []*x509.Certificate {
	if p == nil {
		return nil
	}
	return p.certs
}

// Len returns the number of certificates in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.certs)
}

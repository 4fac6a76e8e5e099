// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testpki generates throwaway certificate hierarchies for tests:
// root CAs, intermediates (including cross-signed ones sharing a key pair),
// leaf certificates, and CRLs. It is imported only from _test files.
package testpki

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"
)

// Entity is a certificate together with its private key, usable as an issuer
// for further certificates and CRLs.
type Entity struct {
	Cert *x509.Certificate
	Key  *ecdsa.PrivateKey
}

// Option mutates a certificate template before signing.
type Option func(*x509.Certificate)

// NotBefore overrides the template's validity start.
func NotBefore(t time.Time) Option {
	return func(tmpl *x509.Certificate) { tmpl.NotBefore = t }
}

// NotAfter overrides the template's validity end.
func NotAfter(t time.Time) Option {
	return func(tmpl *x509.Certificate) { tmpl.NotAfter = t }
}

// NewRootCA creates a self-signed CA certificate.
func NewRootCA(tb testing.TB, commonName string, opts ...Option) *Entity {
	tb.Helper()

	key := newKey(tb)
	tmpl := caTemplate(tb, commonName, opts...)

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, key.Public(), key)
	if err != nil {
		tb.Fatalf("creating root CA %q: %v", commonName, err)
	}

	return &Entity{Cert: parse(tb, der), Key: key}
}

// NewIntermediate creates a CA certificate issued by e.
func (e *Entity) NewIntermediate(tb testing.TB, commonName string, opts ...Option) *Entity {
	tb.Helper()

	key := newKey(tb)
	tmpl := caTemplate(tb, commonName, opts...)

	der, err := x509.CreateCertificate(rand.Reader, tmpl, e.Cert, key.Public(), e.Key)
	if err != nil {
		tb.Fatalf("creating intermediate %q: %v", commonName, err)
	}

	return &Entity{Cert: parse(tb, der), Key: key}
}

// CrossSign issues a certificate carrying other's subject and public key
// under e. The result verifies signatures made by other's key, which is how
// cross-signed CA pairs with identical subjects arise in real pools.
func (e *Entity) CrossSign(tb testing.TB, other *Entity, opts ...Option) *Entity {
	tb.Helper()

	tmpl := caTemplate(tb, other.Cert.Subject.CommonName, opts...)

	der, err := x509.CreateCertificate(rand.Reader, tmpl, e.Cert, other.Key.Public(), e.Key)
	if err != nil {
		tb.Fatalf("cross-signing %q: %v", other.Cert.Subject.CommonName, err)
	}

	return &Entity{Cert: parse(tb, der), Key: other.Key}
}

// NewLeaf creates an end-entity certificate issued by e.
func (e *Entity) NewLeaf(tb testing.TB, commonName string, opts ...Option) *Entity {
	tb.Helper()

	key := newKey(tb)
	tmpl := &x509.Certificate{
		SerialNumber: newSerial(tb),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	for _, opt := range opts {
		opt(tmpl)
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, e.Cert, key.Public(), e.Key)
	if err != nil {
		tb.Fatalf("creating leaf %q: %v", commonName, err)
	}

	return &Entity{Cert: parse(tb, der), Key: key}
}

// NewCRL creates a revocation list issued by e covering the given revoked
// certificates, valid between thisUpdate and nextUpdate.
func (e *Entity) NewCRL(tb testing.TB, revoked []*x509.Certificate, thisUpdate, nextUpdate time.Time) *x509.RevocationList {
	tb.Helper()

	entries := make([]x509.RevocationListEntry, 0, len(revoked))
	for _, cert := range revoked {
		entries = append(entries, x509.RevocationListEntry{
			SerialNumber:   cert.SerialNumber,
			RevocationTime: thisUpdate,
			ReasonCode:     1, // keyCompromise
		})
	}

	tmpl := &x509.RevocationList{
		Number:                    newSerial(tb),
		ThisUpdate:                thisUpdate,
		NextUpdate:                nextUpdate,
		RevokedCertificateEntries: entries,
	}

	der, err := x509.CreateRevocationList(rand.Reader, tmpl, e.Cert, e.Key)
	if err != nil {
		tb.Fatalf("creating CRL from %q: %v", e.Cert.Subject.CommonName, err)
	}

	crl, err := x509.ParseRevocationList(der)
	if err != nil {
		tb.Fatalf("parsing generated CRL: %v", err)
	}

	return crl
}

// Tamper returns a copy of the certificate with its trailing signature bytes
// corrupted, so it still parses but no longer verifies.
func Tamper(tb testing.TB, cert *x509.Certificate) *x509.Certificate {
	tb.Helper()

	raw := append([]byte(nil), cert.Raw...)
	raw[len(raw)-1] ^= 0xFF

	tampered, err := x509.ParseCertificate(raw)
	if err != nil {
		tb.Fatalf("parsing tampered certificate: %v", err)
	}

	return tampered
}

func caTemplate(tb testing.TB, commonName string, opts ...Option) *x509.Certificate {
	tb.Helper()

	tmpl := &x509.Certificate{
		SerialNumber:          newSerial(tb),
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	for _, opt := range opts {
		opt(tmpl)
	}
	return tmpl
}

func newKey(tb testing.TB) *ecdsa.PrivateKey {
	tb.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		tb.Fatalf("generating key: %v", err)
	}
	return key
}

func newSerial(tb testing.TB) *big.Int {
	tb.Helper()

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		tb.Fatalf("generating serial: %v", err)
	}
	return serial
}

func parse(tb testing.TB, der []byte) *x509.Certificate {
	tb.Helper()

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("parsing generated certificate: %v", err)
	}
	return cert
}

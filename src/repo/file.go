// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package repo

import (
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/certs"
)

// FileRepo supplies trust material from the local file system.
//
// Each getter re-reads its directory on every call, so entities are loaded
// fresh per validation call and trust store updates take effect immediately.
// FileRepo holds no mutable state and is safe for concurrent reads.
type FileRepo struct {
	// TrustedDir holds root certificates that become trust anchors.
	TrustedDir string

	// CADir holds intermediate CA certificates. Optional.
	CADir string

	// CRLDir holds certificate revocation lists. Optional; an empty or
	// missing directory yields zero CRLs, which disables revocation checking.
	CRLDir string

	decoder *x509certs.Decoder
}

// NewFileRepo creates a file-system repository from the given configuration.
func NewFileRepo(cfg *Config) *FileRepo {
	return &FileRepo{
		TrustedDir: cfg.TrustedDir,
		CADir:      cfg.CADir,
		CRLDir:     cfg.CRLDir,
		decoder:    x509certs.New(),
	}
}

// CACerts returns the intermediate CA certificates from CADir.
//
// An unset CADir yields no intermediates; a set but unreadable one is a
// configuration fault.
func (r *FileRepo) CACerts() ([]*x509.Certificate, error) {
	if r.CADir == "" {
		return nil, nil
	}
	return r.loadCerts(r.CADir)
}

// TrustedCACerts returns the trusted root certificates from TrustedDir.
func (r *FileRepo) TrustedCACerts() ([]*x509.Certificate, error) {
	return r.loadCerts(r.TrustedDir)
}

// CRLs returns all certificate revocation lists found in CRLDir.
func (r *FileRepo) CRLs() ([]*x509.RevocationList, error) {
	if r.CRLDir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(r.CRLDir)
	if err != nil {
		return nil, fmt.Errorf("repo: reading CRL dir %s: %w", r.CRLDir, err)
	}

	var crls []*x509.RevocationList
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(r.CRLDir, entry.Name())
		data, err := r.readFile(path)
		if err != nil {
			return nil, err
		}

		decoded, err := r.decoder.DecodeCRLMultiple(data)
		if err != nil {
			return nil, fmt.Errorf("repo: decoding CRL %s: %w", path, err)
		}
		crls = append(crls, decoded...)
	}

	return crls, nil
}

// loadCerts reads every file in dir and decodes it as one or more
// certificates. Any undecodable file is a configuration fault rather than
// silently skipped data.
func (r *FileRepo) loadCerts(dir string) ([]*x509.Certificate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("repo: reading cert dir %s: %w", dir, err)
	}

	var certs []*x509.Certificate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := r.readFile(path)
		if err != nil {
			return nil, err
		}

		decoded, err := r.decoder.DecodeMultiple(data)
		if err != nil {
			return nil, fmt.Errorf("repo: decoding certificate %s: %w", path, err)
		}
		certs = append(certs, decoded...)
	}

	return certs, nil
}

// readFile reads a file through the pooled buffer to avoid per-file
// allocations when repositories hold many certificates.
func (r *FileRepo) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("repo: opening %s: %w", path, err)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("repo: reading %s: %w", path, err)
	}
	f.Close()

	return append([]byte(nil), buf.Bytes()...), nil
}

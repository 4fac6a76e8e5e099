// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/anchor"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/pathbuild"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/logger"
)

// Status is the overall result of one validation call.
type Status int

const (
	// StatusValid means issuer trust was established: at least one path from
	// the target certificate to a configured trust anchor verified.
	StatusValid Status = iota

	// StatusInvalid means no valid path to a trust anchor exists.
	StatusInvalid

	// StatusIndeterminate means the request could not be evaluated at all,
	// e.g. an empty or unparsable certificate list.
	StatusIndeterminate
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusIndeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Stable machine-readable reason identifiers carried on an Outcome.
const (
	// ReasonIssuerTrustEstablished accompanies StatusValid.
	ReasonIssuerTrustEstablished = "issuer-trust-established"

	// ReasonIssuerTrustFailed accompanies StatusInvalid.
	ReasonIssuerTrustFailed = "issuer-trust-failed"

	// ReasonRequestUnsupported accompanies StatusIndeterminate for empty or
	// unparsable requests.
	ReasonRequestUnsupported = "request-unsupported"
)

// Outcome is the caller-visible result of one validation call.
type Outcome struct {
	Status  Status   `json:"status"`
	Reasons []string `json:"reasons"`
}

// ConfigError is a fatal configuration-level failure: the certificate
// repository could not supply data, or validation parameters were
// structurally invalid. It must never be folded into a negative trust
// result.
type ConfigError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("validator: configuration error in %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Err }

// Repository supplies trust material per validation call.
//
// Implementations must be safe for concurrent reads; the validator loads all
// entities fresh on every call and never caches across calls. Any failure to
// return data is propagated as a fatal configuration error, with one
// exception spelled out by the revocation policy: an empty CRL slice is a
// valid answer that disables revocation checking.
type Repository interface {
	// CACerts returns the intermediate CA certificates available for path
	// construction.
	CACerts() ([]*x509.Certificate, error)

	// TrustedCACerts returns the root certificates to become trust anchors.
	TrustedCACerts() ([]*x509.Certificate, error)

	// CRLs returns the certificate revocation lists for this call.
	CRLs() ([]*x509.RevocationList, error)
}

// Validator validates certificate chains against a repository-backed trust
// store. One Validate call is one independent unit of work; a Validator holds
// no mutable state, so concurrent calls are safe as long as the Repository is.
type Validator struct {
	// Repo supplies intermediates, trusted roots and CRLs. Required.
	Repo Repository

	// Log receives informational diagnostics. May be nil.
	Log logger.Logger

	// At is the verification time. The zero value means time.Now() per call.
	At time.Time

	// MaxDepth bounds constructed path length; zero means the pathbuild
	// default.
	MaxDepth int
}

// New creates a Validator over the given repository and diagnostics sink.
func New(repo Repository, log logger.Logger) *Validator {
	return &Validator{Repo: repo, Log: log}
}

// Validate checks whether the target certificate (first element) chains to a
// trusted authority, honoring intermediates and CRLs from the repository.
//
// An empty or nil certificate list yields an Indeterminate outcome, never an
// error. A chain that fails to reach a trust anchor yields an Invalid
// outcome. The returned error is non-nil only for configuration-level
// failures (*ConfigError).
func (v *Validator) Validate(ctx context.Context, certificates []*x509.Certificate) (Outcome, error) {
	if len(certificates) == 0 {
		return Outcome{
			Status:  StatusIndeterminate,
			Reasons: []string{ReasonRequestUnsupported},
		}, nil
	}

	path, err := v.BuildPath(ctx, certificates)
	if err != nil {
		var pathErr *pathbuild.PathError
		if errors.As(err, &pathErr) {
			v.logf("validation negative for %q: %v", certificates[0].Subject.CommonName, pathErr)
			return Outcome{
				Status:  StatusInvalid,
				Reasons: []string{ReasonIssuerTrustFailed},
			}, nil
		}
		return Outcome{}, err
	}

	v.logf("validation positive for %q via anchor %q", certificates[0].Subject.CommonName, path.Anchor.Subject())
	return Outcome{
		Status:  StatusValid,
		Reasons: []string{ReasonIssuerTrustEstablished},
	}, nil
}

// BuildPath loads trust material from the repository and attempts to
// construct a verified path for the target certificate (first element).
// The remaining request certificates act as an additional issuer pool.
//
// Errors are either *pathbuild.PathError (normal negative result, matching
// pathbuild.ErrNoPath) or *ConfigError (fatal).
func (v *Validator) BuildPath(ctx context.Context, certificates []*x509.Certificate) (*pathbuild.Path, error) {
	if len(certificates) == 0 || certificates[0] == nil {
		return nil, &ConfigError{Op: "build-path", Err: pathbuild.ErrInvalidParams}
	}
	if err := ctx.Err(); err != nil {
		return nil, &ConfigError{Op: "build-path", Err: err}
	}

	intermediates, err := v.Repo.CACerts()
	if err != nil {
		return nil, &ConfigError{Op: "load-ca-certs", Err: err}
	}
	trustedRoots, err := v.Repo.TrustedCACerts()
	if err != nil {
		return nil, &ConfigError{Op: "load-trusted-ca-certs", Err: err}
	}
	crls, err := v.Repo.CRLs()
	if err != nil {
		return nil, &ConfigError{Op: "load-crls", Err: err}
	}

	builder := &pathbuild.Builder{
		Anchors:       anchor.BuildSet(trustedRoots),
		Intermediates: pathbuild.NewPool(intermediates),
		RequestCerts:  pathbuild.NewPool(certificates[1:]),
		CRLs:          pathbuild.NewCRLSet(crls),
		At:            v.At,
		MaxDepth:      v.MaxDepth,
		Log:           v.Log,
	}

	path, err := builder.Build(certificates[0])
	if err != nil {
		if errors.Is(err, pathbuild.ErrInvalidParams) {
			return nil, &ConfigError{Op: "build-path", Err: err}
		}
		return nil, err
	}

	return path, nil
}

// logf forwards a diagnostic message to the configured sink, if any.
func (v *Validator) logf(format string, args ...any) {
	if v.Log != nil {
		v.Log.Printf(format, args...)
	}
}

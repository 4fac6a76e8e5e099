// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator_test

import (
	"context"
	"crypto/x509"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/pathbuild"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/testpki"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/validator"
)

// memRepo is an in-memory Repository for tests.
type memRepo struct {
	cas     []*x509.Certificate
	trusted []*x509.Certificate
	crls    []*x509.RevocationList

	casErr, trustedErr, crlsErr error
}

func (m *memRepo) CACerts() ([]*x509.Certificate, error)        { return m.cas, m.casErr }
func (m *memRepo) TrustedCACerts() ([]*x509.Certificate, error) { return m.trusted, m.trustedErr }
func (m *memRepo) CRLs() ([]*x509.RevocationList, error)        { return m.crls, m.crlsErr }

func TestValidate(t *testing.T) {
	root := testpki.NewRootCA(t, "Root CA")
	inter := root.NewIntermediate(t, "Intermediate CA")
	leaf := inter.NewLeaf(t, "leaf.example.com")

	stranger := testpki.NewRootCA(t, "Stranger Root").NewLeaf(t, "stranger.example.com")

	tests := []struct {
		name        string
		repo        *memRepo
		certs       []*x509.Certificate
		wantStatus  validator.Status
		wantReasons []string
	}{
		{
			name:        "Trusted Chain Is Valid",
			repo:        &memRepo{cas: []*x509.Certificate{inter.Cert}, trusted: []*x509.Certificate{root.Cert}},
			certs:       []*x509.Certificate{leaf.Cert},
			wantStatus:  validator.StatusValid,
			wantReasons: []string{validator.ReasonIssuerTrustEstablished},
		},
		{
			name:        "Intermediate From Request Pool Is Honored",
			repo:        &memRepo{trusted: []*x509.Certificate{root.Cert}},
			certs:       []*x509.Certificate{leaf.Cert, inter.Cert},
			wantStatus:  validator.StatusValid,
			wantReasons: []string{validator.ReasonIssuerTrustEstablished},
		},
		{
			name:        "Unreachable Anchor Is Invalid",
			repo:        &memRepo{cas: []*x509.Certificate{inter.Cert}, trusted: []*x509.Certificate{root.Cert}},
			certs:       []*x509.Certificate{stranger.Cert},
			wantStatus:  validator.StatusInvalid,
			wantReasons: []string{validator.ReasonIssuerTrustFailed},
		},
		{
			name:        "Empty Trust Store Is Invalid",
			repo:        &memRepo{cas: []*x509.Certificate{inter.Cert}},
			certs:       []*x509.Certificate{leaf.Cert},
			wantStatus:  validator.StatusInvalid,
			wantReasons: []string{validator.ReasonIssuerTrustFailed},
		},
		{
			name:        "Empty Request Is Indeterminate",
			repo:        &memRepo{trusted: []*x509.Certificate{root.Cert}},
			certs:       nil,
			wantStatus:  validator.StatusIndeterminate,
			wantReasons: []string{validator.ReasonRequestUnsupported},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New(tt.repo, nil)

			outcome, err := v.Validate(context.Background(), tt.certs)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantReasons, outcome.Reasons)
		})
	}
}

func TestValidateRevocation(t *testing.T) {
	now := time.Now()
	root := testpki.NewRootCA(t, "Root CA")
	inter := root.NewIntermediate(t, "Intermediate CA")
	leaf := inter.NewLeaf(t, "leaf.example.com")

	crls := []*x509.RevocationList{
		inter.NewCRL(t, []*x509.Certificate{leaf.Cert}, now.Add(-time.Hour), now.Add(time.Hour)),
		root.NewCRL(t, nil, now.Add(-time.Hour), now.Add(time.Hour)),
	}

	repo := &memRepo{
		cas:     []*x509.Certificate{inter.Cert},
		trusted: []*x509.Certificate{root.Cert},
		crls:    crls,
	}

	v := validator.New(repo, nil)
	outcome, err := v.Validate(context.Background(), []*x509.Certificate{leaf.Cert})
	require.NoError(t, err)
	assert.Equal(t, validator.StatusInvalid, outcome.Status)

	// Dropping the CRLs disables revocation and the same chain validates.
	repo.crls = nil
	outcome, err = v.Validate(context.Background(), []*x509.Certificate{leaf.Cert})
	require.NoError(t, err)
	assert.Equal(t, validator.StatusValid, outcome.Status)
}

func TestValidateRepositoryFailure(t *testing.T) {
	root := testpki.NewRootCA(t, "Root CA")
	leaf := root.NewLeaf(t, "leaf.example.com")
	boom := errors.New("store unreachable")

	tests := []struct {
		name   string
		repo   *memRepo
		wantOp string
	}{
		{
			name:   "CA Certificates Load Failure",
			repo:   &memRepo{casErr: boom, trusted: []*x509.Certificate{root.Cert}},
			wantOp: "load-ca-certs",
		},
		{
			name:   "Trusted Roots Load Failure",
			repo:   &memRepo{trustedErr: boom},
			wantOp: "load-trusted-ca-certs",
		},
		{
			name:   "CRL Load Failure",
			repo:   &memRepo{trusted: []*x509.Certificate{root.Cert}, crlsErr: boom},
			wantOp: "load-crls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New(tt.repo, nil)

			_, err := v.Validate(context.Background(), []*x509.Certificate{leaf.Cert})
			require.Error(t, err)

			// A broken repository is a fatal fault, never a negative result.
			var cfgErr *validator.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantOp, cfgErr.Op)
			assert.ErrorIs(t, err, boom)
			assert.False(t, errors.Is(err, pathbuild.ErrNoPath))
		})
	}
}

func TestValidateCancelledContext(t *testing.T) {
	root := testpki.NewRootCA(t, "Root CA")
	leaf := root.NewLeaf(t, "leaf.example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := validator.New(&memRepo{trusted: []*x509.Certificate{root.Cert}}, nil)
	_, err := v.Validate(ctx, []*x509.Certificate{leaf.Cert})

	var cfgErr *validator.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPath(t *testing.T) {
	root := testpki.NewRootCA(t, "Root CA")
	inter := root.NewIntermediate(t, "Intermediate CA")
	leaf := inter.NewLeaf(t, "leaf.example.com")

	repo := &memRepo{cas: []*x509.Certificate{inter.Cert}, trusted: []*x509.Certificate{root.Cert}}
	v := validator.New(repo, nil)

	path, err := v.BuildPath(context.Background(), []*x509.Certificate{leaf.Cert})
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, 3, path.Len())
	assert.True(t, path.Target().Equal(leaf.Cert))

	_, err = v.BuildPath(context.Background(), nil)
	var cfgErr *validator.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, pathbuild.ErrInvalidParams)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "valid", validator.StatusValid.String())
	assert.Equal(t, "invalid", validator.StatusInvalid.String())
	assert.Equal(t, "indeterminate", validator.StatusIndeterminate.String())
}

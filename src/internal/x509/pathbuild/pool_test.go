// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild_test

import (
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/pathbuild"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/testpki"
)

func TestPool(t *testing.T) {
	ca := testpki.NewRootCA(t, "Pool CA")
	first := ca.NewIntermediate(t, "Shared Name")
	second := ca.NewIntermediate(t, "Shared Name")
	other := ca.NewIntermediate(t, "Other Name")

	t.Run("Duplicates Are Kept", func(t *testing.T) {
		p := pathbuild.NewPool([]*x509.Certificate{first.Cert, first.Cert})
		assert.Equal(t, 2, p.Len())
	})

	t.Run("Lookup By Raw Subject", func(t *testing.T) {
		p := pathbuild.NewPool([]*x509.Certificate{first.Cert, second.Cert, other.Cert})

		assert.Len(t, p.BySubject(first.Cert.RawSubject), 2)
		assert.Len(t, p.BySubject(other.Cert.RawSubject), 1)
		assert.Empty(t, p.BySubject([]byte("no such name")))
	})

	t.Run("Multiple Batches And Nil Entries", func(t *testing.T) {
		p := pathbuild.NewPool(
			[]*x509.Certificate{first.Cert, nil},
			[]*x509.Certificate{other.Cert},
		)
		assert.Equal(t, 2, p.Len())
		assert.Len(t, p.Certs(), 2)
	})

	t.Run("Nil Pool Is Empty", func(t *testing.T) {
		var p *pathbuild.Pool
		assert.Equal(t, 0, p.Len())
		assert.Nil(t, p.BySubject(first.Cert.RawSubject))
		assert.Nil(t, p.Certs())
	})
}

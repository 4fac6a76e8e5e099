// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild_test

import (
	"crypto/x509"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/anchor"
	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/pathbuild"
)

func builtPath(t *testing.T) *pathbuild.Path {
	t.Helper()

	c := newChain(t)
	b := &pathbuild.Builder{
		Anchors:       anchor.BuildSet([]*x509.Certificate{c.root.Cert}),
		Intermediates: pathbuild.NewPool([]*x509.Certificate{c.inter.Cert}),
	}

	path, err := b.Build(c.leaf.Cert)
	require.NoError(t, err)
	return path
}

func TestRenderTree(t *testing.T) {
	out := builtPath(t).RenderTree()

	assert.Contains(t, out, "├── leaf.example.com (End-Entity Certificate)")
	assert.Contains(t, out, "├── Test Intermediate CA (Intermediate CA Certificate)")
	assert.Contains(t, out, "└── Test Root CA (Trust Anchor)")
}

func TestRenderTreeSingleCertificate(t *testing.T) {
	c := newChain(t)
	b := &pathbuild.Builder{Anchors: anchor.BuildSet([]*x509.Certificate{c.root.Cert})}

	path, err := b.Build(c.root.Cert)
	require.NoError(t, err)

	out := path.RenderTree()
	assert.Contains(t, out, "└── Test Root CA (Self-Signed Trust Anchor)")
}

func TestRenderTable(t *testing.T) {
	out := builtPath(t).RenderTable()

	assert.Contains(t, out, "Role")
	assert.Contains(t, out, "leaf.example.com")
	assert.Contains(t, out, "Test Root CA")
	assert.Contains(t, out, "256-bit ECDSA")
}

func TestToJSON(t *testing.T) {
	raw, err := builtPath(t).ToJSON()
	require.NoError(t, err)

	var data struct {
		PathLength   int `json:"pathLength"`
		Certificates []struct {
			Subject     string `json:"subject"`
			Role        string `json:"role"`
			IsCA        bool   `json:"isCA"`
			TrustAnchor bool   `json:"trustAnchor"`
		} `json:"certificates"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))

	require.Equal(t, 3, data.PathLength)
	require.Len(t, data.Certificates, 3)

	assert.Equal(t, "leaf.example.com", data.Certificates[0].Subject)
	assert.False(t, data.Certificates[0].IsCA)
	assert.False(t, data.Certificates[0].TrustAnchor)

	assert.True(t, data.Certificates[1].IsCA)
	assert.Equal(t, "Trust Anchor", data.Certificates[2].Role)
	assert.True(t, data.Certificates[2].TrustAnchor)
}

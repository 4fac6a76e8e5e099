// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-trust-validator/src/internal/x509/pathbuild"
)

func TestPathError(t *testing.T) {
	t.Run("Matches ErrNoPath Sentinel", func(t *testing.T) {
		err := error(&pathbuild.PathError{Reasons: []string{pathbuild.ReasonNoIssuerFound}})

		assert.ErrorIs(t, err, pathbuild.ErrNoPath)
		assert.False(t, errors.Is(err, pathbuild.ErrInvalidParams))
	})

	t.Run("Error Message Carries Reasons", func(t *testing.T) {
		err := &pathbuild.PathError{Reasons: []string{
			pathbuild.ReasonSignatureInvalid,
			pathbuild.ReasonCertExpired,
		}}

		assert.Contains(t, err.Error(), "no path to a trusted anchor")
		assert.Contains(t, err.Error(), "signature-invalid, cert-expired")
	})

	t.Run("No Reasons Falls Back To Sentinel Message", func(t *testing.T) {
		err := &pathbuild.PathError{}
		assert.Equal(t, pathbuild.ErrNoPath.Error(), err.Error())
	})
}

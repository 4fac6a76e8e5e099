// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
)

var (
	// ErrParseCRL indicates a failure to parse a certificate revocation list.
	ErrParseCRL = errors.New("x509certs: failed to parse CRL")
)

// DecodeCRL decodes a single certificate revocation list from data.
//
// It accepts both PEM ("X509 CRL" block) and raw DER input.
func (d *Decoder) DecodeCRL(data []byte) (*x509.RevocationList, error) {
	if d.IsPEM(data) {
		block, err := d.decodePEMBlock(data, d.crlBlockType)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	crl, err := x509.ParseRevocationList(data)
	if err != nil {
		return nil, ErrParseCRL
	}

	return crl, nil
}

// DecodeCRLMultiple decodes one or more certificate revocation lists from data.
//
// PEM input may contain any number of "X509 CRL" blocks; DER input is treated
// as a single list.
func (d *Decoder) DecodeCRLMultiple(data []byte) ([]*x509.RevocationList, error) {
	if !d.IsPEM(data) {
		crl, err := d.DecodeCRL(data)
		if err != nil {
			return nil, err
		}
		return []*x509.RevocationList{crl}, nil
	}

	var crls []*x509.RevocationList

	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != d.crlBlockType {
			return nil, ErrInvalidBlockType
		}

		crl, err := x509.ParseRevocationList(block.Bytes)
		if err != nil {
			return nil, ErrParseCRL
		}

		crls = append(crls, crl)
		data = rest
	}

	return crls, nil
}

// EncodeCRLPEM encodes a certificate revocation list to PEM format.
func (d *Decoder) EncodeCRLPEM(crl *x509.RevocationList) []byte {
	block := pem.Block{
		Type:  d.crlBlockType,
		Bytes: crl.Raw,
	}
	return pem.EncodeToMemory(&block)
}

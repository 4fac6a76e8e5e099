// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pathbuild

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTree renders an accepted path as an ASCII tree diagram, target first,
// trust anchor last.
func (p *Path) RenderTree() string {
	all := p.All()
	if len(all) == 0 {
		return "No certificates in path"
	}

	var result strings.Builder
	for i, cert := range all {
		connector := "├── "
		if i == len(all)-1 {
			connector = "└── "
		}

		info := cert.Subject.CommonName
		if role := p.role(i, len(all)); role != "" {
			info += fmt.Sprintf(" (%s)", role)
		}

		result.WriteString(connector + info + "\n")
	}

	return result.String()
}

// RenderTable renders an accepted path as a formatted markdown table showing
// per-certificate role, subject, issuer, validity and key details.
func (p *Path) RenderTable() string {
	all := p.All()
	if len(all) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key"})

	var rows [][]string
	for i, cert := range all {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.role(i, len(all)),
			cert.Subject.CommonName,
			cert.Issuer.CommonName,
			cert.NotAfter.Format("2006-01-02"),
			keyDescription(cert.PublicKey),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// ToJSON converts an accepted path to structured JSON for external tools.
func (p *Path) ToJSON() ([]byte, error) {
	type certData struct {
		Index              int       `json:"index"`
		Role               string    `json:"role"`
		Subject            string    `json:"subject"`
		Issuer             string    `json:"issuer"`
		SerialNumber       string    `json:"serialNumber"`
		SignatureAlgorithm string    `json:"signatureAlgorithm"`
		NotBefore          time.Time `json:"notBefore"`
		NotAfter           time.Time `json:"notAfter"`
		IsCA               bool      `json:"isCA"`
		TrustAnchor        bool      `json:"trustAnchor"`
	}

	type pathData struct {
		Timestamp    string     `json:"timestamp"`
		PathLength   int        `json:"pathLength"`
		Certificates []certData `json:"certificates"`
	}

	all := p.All()
	data := pathData{
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		PathLength:   len(all),
		Certificates: make([]certData, len(all)),
	}

	for i, cert := range all {
		data.Certificates[i] = certData{
			Index:              i,
			Role:               p.role(i, len(all)),
			Subject:            cert.Subject.CommonName,
			Issuer:             cert.Issuer.CommonName,
			SerialNumber:       cert.SerialNumber.String(),
			SignatureAlgorithm: cert.SignatureAlgorithm.String(),
			NotBefore:          cert.NotBefore,
			NotAfter:           cert.NotAfter,
			IsCA:               cert.IsCA,
			TrustAnchor:        p.Anchor != nil && cert.Equal(p.Anchor.Cert),
		}
	}

	return json.MarshalIndent(data, "", "  ")
}

// role describes a certificate's position within the validated path.
func (p *Path) role(index, total int) string {
	switch {
	case total == 1:
		if isSelfIssued(p.Certs[0]) {
			return "Self-Signed Trust Anchor"
		}
		return "Trust Anchor"
	case index == 0:
		return "End-Entity Certificate"
	case index == total-1:
		return "Trust Anchor"
	default:
		return "Intermediate CA Certificate"
	}
}

// keyDescription summarizes a public key's algorithm and size.
func keyDescription(key any) string {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("%d-bit RSA", k.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("%d-bit ECDSA", k.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return "Ed25519"
	default:
		return "unknown"
	}
}

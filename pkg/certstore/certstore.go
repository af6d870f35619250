// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-attest.
//
// go-attest is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package certstore loads and writes the X.509 certificates the agent's
// trust layer operates on: identity certificates, revocation certificates
// and trust-anchor sets.
//
// Certificates are read from caller-supplied filesystem paths in DER or PEM
// form. There is no implicit search path and nothing is cached; every load
// is a single read of a single file.
package certstore

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/jeremyhahn/go-attest/pkg/logging"
)

const pemTypeCertificate = "CERTIFICATE"

// LoadDER reads one DER-encoded X.509 certificate from path.
func LoadDER(path string) (*x509.Certificate, error) {
	der, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("certstore: read %s: %w", path, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return cert, nil
}

// LoadPEM reads the first PEM-encoded X.509 certificate from path.
func LoadPEM(path string) (*x509.Certificate, error) {
	chain, err := LoadChain(path)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCertificate, path)
	}
	return chain[0], nil
}

// LoadSingle reads a PEM file that may contain a certificate chain and
// succeeds only if it holds exactly one certificate. Callers use this for
// slots whose policy demands a single certificate, such as the revocation
// certificate slot.
func LoadSingle(path string) (*x509.Certificate, error) {
	chain, err := LoadChain(path)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCertificate, path)
	}
	if len(chain) > 1 {
		return nil, fmt.Errorf("%w: %s holds %d", ErrMultipleCertificates, path, len(chain))
	}
	return chain[0], nil
}

// LoadChain reads all PEM-encoded certificates from path, preserving file
// order. The first entry is the leaf. A file without CERTIFICATE blocks
// yields an empty chain, not an error.
func LoadChain(path string) ([]*x509.Certificate, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("certstore: read %s: %w", path, err)
	}
	var chain []*x509.Certificate
	rest := contents
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != pemTypeCertificate {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		chain = append(chain, cert)
	}
	return chain, nil
}

// LoadList loads certificate chains from every path in paths and
// concatenates the results. A path that cannot be read or parsed is skipped
// with a warning rather than failing the whole load: trust-anchor
// configuration commonly references optional files, and a missing one must
// not abort agent startup.
func LoadList(logger *logging.Logger, paths []string) []*x509.Certificate {
	var loaded []*x509.Certificate
	for _, path := range paths {
		chain, err := LoadChain(path)
		if err != nil {
			logger.Warnf("could not load certs from %s: %v", path, err)
			continue
		}
		loaded = append(loaded, chain...)
	}
	return loaded
}

// WritePEM serializes one certificate to PEM at path, creating or
// truncating the file.
func WritePEM(cert *x509.Certificate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("certstore: create %s: %w", path, err)
	}
	block := &pem.Block{Type: pemTypeCertificate, Bytes: cert.Raw}
	if err := pem.Encode(f, block); err != nil {
		f.Close()
		return fmt.Errorf("certstore: write %s: %w", path, err)
	}
	return f.Close()
}

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

// Package mtls assembles the server-side TLS configuration for the agent's
// mutually-authenticated listener.
package mtls

import (
	"crypto"
	"crypto/tls"
	"crypto/x509"
	"fmt"

	"github.com/jeremyhahn/go-attest/pkg/keystore"
)

// NewServerConfig builds a server TLS configuration from the agent identity
// certificate and key and a set of trust anchors for peer verification.
// Peer certificates are required and validated against the trusted set;
// connections without one are rejected.
func NewServerConfig(identityCert *x509.Certificate, identityKey crypto.PrivateKey, trustedCAs []*x509.Certificate) (*tls.Config, error) {
	if identityCert == nil {
		return nil, fmt.Errorf("mtls: identity certificate is required")
	}
	if err := checkKeyMatchesCert(identityCert, identityKey); err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()
	for _, ca := range trustedCAs {
		pool.AddCert(ca)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{
			{
				Certificate: [][]byte{identityCert.Raw},
				PrivateKey:  identityKey,
				Leaf:        identityCert,
			},
		},
		ClientAuth: tls.RequireAndVerifyClientCert,
		ClientCAs:  pool,
		MinVersion: tls.VersionTLS12,
		CipherSuites: []uint16{
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
		},
	}, nil
}

// checkKeyMatchesCert verifies the private key belongs to the certificate
// before the pair is handed to the TLS stack, so a mispaired identity fails
// at build time instead of at the first handshake.
func checkKeyMatchesCert(cert *x509.Certificate, key crypto.PrivateKey) error {
	public, err := keystore.PublicFromPrivate(key)
	if err != nil {
		return fmt.Errorf("mtls: identity key: %w", err)
	}
	certPub, ok := cert.PublicKey.(interface{ Equal(crypto.PublicKey) bool })
	if !ok {
		return fmt.Errorf("mtls: identity certificate key is not comparable")
	}
	if !certPub.Equal(public) {
		return fmt.Errorf("mtls: identity key does not match identity certificate")
	}
	return nil
}

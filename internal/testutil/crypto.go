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

// Package testutil holds the test-side counterparts of production crypto
// paths: encryption toward the agent, signing as the verifier, and fixture
// key handling. Nothing here is compiled into the production surface; these
// paths deliberately skip the hardening the production code carries.
package testutil

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"math/big"
	"time"
)

// SelfSigned returns a minimal self-signed certificate over key's public
// half, suitable as a test identity or trust anchor.
func SelfSigned(key crypto.Signer, commonName string) (*x509.Certificate, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, err
	}
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		BasicConstraintsValid: true,
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
	if err != nil {
		return nil, err
	}
	return x509.ParseCertificate(der)
}

// OAEPEncrypt is the test-side counterpart of the production OAEP
// decryptor, using the same SHA-1 digest and MGF1 parameters the peer uses.
func OAEPEncrypt(public *rsa.PublicKey, data []byte) ([]byte, error) {
	return rsa.EncryptOAEP(sha1.New(), rand.Reader, public, data, nil)
}

// PSSSign signs message the way the verifying party does: RSA-PSS with
// SHA-256 digest and MGF1 hash and maximum-length salt, base64 encoded.
func PSSSign(private *rsa.PrivateKey, message []byte) (string, error) {
	digest := sha256.Sum256(message)
	// PSSSaltLengthAuto salts to the maximum possible length when signing.
	signature, err := rsa.SignPSS(rand.Reader, private, crypto.SHA256, digest[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// PublicKeyFromPEM parses a PKIX PEM public key into its RSA form.
func PublicKeyFromPEM(pemText string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("testutil: no PEM block")
	}
	public, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaPub, ok := public.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("testutil: not an RSA public key: %T", public)
	}
	return rsaPub, nil
}

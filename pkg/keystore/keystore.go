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

// Package keystore manages the agent's asymmetric identity key material:
// generation, PKCS#8 PEM persistence with optional passphrase encryption,
// and public key derivation.
//
// Private key files are always written with owner-only permissions (0600).
// When a passphrase encrypts a key at rest, the PEM body is protected with
// AES-256-CBC to stay compatible with keys produced by the counterpart
// verifier tooling.
package keystore

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/youmark/pkcs8"
)

// keyFileMode is mandatory for persisted private keys, which hold secret
// material readable by the owner only.
const keyFileMode = os.FileMode(0o600)

const (
	pemTypePrivateKey          = "PRIVATE KEY"
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemTypeRSAPrivateKey       = "RSA PRIVATE KEY"
	pemTypeECPrivateKey        = "EC PRIVATE KEY"
	pemTypePublicKey           = "PUBLIC KEY"
)

// KeyPair holds a private key and the public key derived from the same
// parameters. The public half carries no secret and may be shared freely;
// the private half is exclusively owned by the caller that generated or
// loaded it.
type KeyPair struct {
	Public  crypto.PublicKey
	Private crypto.PrivateKey
}

// Generate creates a new RSA key pair with the given modulus size in bits.
func Generate(bits int) (*KeyPair, error) {
	private, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("keystore: generate RSA-%d key: %w", bits, err)
	}
	public, err := PublicFromPrivate(private)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: public, Private: private}, nil
}

// PublicFromPrivate reconstructs the public key from a private key's
// parameters. Implemented for RSA only; the surrounding protocol issues no
// other identity key family today, so anything else returns
// ErrUnsupportedKeyType.
func PublicFromPrivate(private crypto.PrivateKey) (crypto.PublicKey, error) {
	switch key := private.(type) {
	case *rsa.PrivateKey:
		return &rsa.PublicKey{N: key.N, E: key.E}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyType, private)
	}
}

// Load reads a PEM private key from path and derives its public half.
// The passphrase is honored only for ENCRYPTED PRIVATE KEY blocks; loading
// an encrypted key with a passphrase that does not encrypt fails with
// ErrPassphraseRequired.
func Load(path string, pass Passphrase) (*KeyPair, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keystore: read %s: %w", path, err)
	}
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: %s: no PEM block", ErrDecode, path)
	}

	var private crypto.PrivateKey
	switch block.Type {
	case pemTypeEncryptedPrivateKey:
		if !pass.Encrypts() {
			return nil, fmt.Errorf("%w: %s", ErrPassphraseRequired, path)
		}
		private, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, pass.secretBytes())
	case pemTypePrivateKey:
		private, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case pemTypeRSAPrivateKey:
		private, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	case pemTypeECPrivateKey:
		private, err = x509.ParseECPrivateKey(block.Bytes)
	default:
		return nil, fmt.Errorf("%w: %s: unexpected PEM type %q", ErrDecode, path, block.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	public, err := PublicFromPrivate(private)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: public, Private: private}, nil
}

// Save serializes the private key to PKCS#8 PEM at path. A passphrase in
// the encrypting state protects the PEM body with AES-256-CBC; otherwise the
// key is written as cleartext PKCS#8. The file is created with and forced to
// mode 0600.
func Save(private crypto.PrivateKey, path string, pass Passphrase) error {
	var der []byte
	var err error
	pemType := pemTypePrivateKey
	if pass.Encrypts() {
		pemType = pemTypeEncryptedPrivateKey
		der, err = pkcs8.MarshalPrivateKey(private, pass.secretBytes(), &pkcs8.Opts{
			Cipher: pkcs8.AES256CBC,
			KDFOpts: pkcs8.PBKDF2Opts{
				SaltSize:       16,
				IterationCount: 10000,
				HMACHash:       crypto.SHA256,
			},
		})
	} else {
		der, err = x509.MarshalPKCS8PrivateKey(private)
	}
	if err != nil {
		return fmt.Errorf("keystore: encode private key: %w", err)
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: der})
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, keyFileMode)
	if err != nil {
		return fmt.Errorf("keystore: create %s: %w", path, err)
	}
	if _, err := f.Write(pemBytes); err != nil {
		f.Close()
		return fmt.Errorf("keystore: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("keystore: close %s: %w", path, err)
	}
	// The open mode only applies on creation; force it for pre-existing files.
	if err := os.Chmod(path, keyFileMode); err != nil {
		return fmt.Errorf("keystore: chmod %s: %w", path, err)
	}
	return nil
}

// EncodePublicPEM serializes a public key to PKIX PEM text.
func EncodePublicPEM(public crypto.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(public)
	if err != nil {
		return "", fmt.Errorf("keystore: encode public key: %w", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der})), nil
}

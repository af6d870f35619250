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

// Package oaep decrypts the RSA-OAEP ciphertexts that deliver key material
// to the agent.
package oaep

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"fmt"
)

// Decrypt recovers the plaintext from an RSA-OAEP ciphertext. The peer
// encrypts with SHA-1 as both the OAEP digest and the MGF1 hash; that
// parameter choice is fixed by the deployed counterpart and must not
// change.
func Decrypt(private *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptOAEP(sha1.New(), rand.Reader, private, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("oaep: decrypt: %w", err)
	}
	return plaintext, nil
}

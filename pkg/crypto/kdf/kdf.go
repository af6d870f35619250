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

// Package kdf implements the password-based key derivation shared with the
// counterpart verifier.
package kdf

import (
	"crypto/sha1"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 2000
	keyLength  = 32
)

// DeriveKey derives a 32-byte key from password and salt with
// PBKDF2-HMAC-SHA1 at 2000 iterations and returns the lowercase hex
// encoding. SHA-1 and the iteration count are fixed interoperability
// parameters of the deployed counterpart system; changing either breaks
// compatibility with keys it derives.
func DeriveKey(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha1.New)
	return hex.EncodeToString(key)
}

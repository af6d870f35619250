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

// Package pss verifies the RSA-PSS signatures the verifying party places
// over protocol messages.
package pss

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// Verify checks a base64-encoded RSA-PSS signature over message. The
// counterpart signs with SHA-256 as both the digest and MGF1 hash and
// maximum-length salt. A structurally valid but incorrect signature returns
// false with no error; malformed base64 or an unusable key returns an
// error.
func Verify(public *rsa.PublicKey, message []byte, signatureB64 string) (bool, error) {
	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false, fmt.Errorf("pss: decode signature: %w", err)
	}

	digest := sha256.Sum256(message)
	opts := &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	}
	if err := rsa.VerifyPSS(public, crypto.SHA256, digest[:], signature, opts); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, fmt.Errorf("pss: verify: %w", err)
	}
	return true, nil
}

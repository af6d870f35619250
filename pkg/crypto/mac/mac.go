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

// Package mac authenticates protocol messages with HMAC-SHA-384, the keyed
// hash the counterpart verifier expects.
package mac

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
)

// ErrAuthentication is returned when a tag does not verify.
var ErrAuthentication = errors.New("mac: authentication failed")

// Compute returns the HMAC-SHA-384 tag over data.
func Compute(key, data []byte) []byte {
	h := hmac.New(sha512.New384, key)
	h.Write(data)
	return h.Sum(nil)
}

// Verify recomputes the tag over data and compares it to expected in
// constant time. A mismatch returns ErrAuthentication; the comparison never
// reveals which byte differed.
func Verify(key, data, expected []byte) error {
	if !hmac.Equal(Compute(key, data), expected) {
		return ErrAuthentication
	}
	return nil
}

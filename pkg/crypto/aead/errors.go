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

package aead

import "errors"

var (
	// ErrKeyLength is returned for key lengths with no corresponding GCM
	// cipher. Only 16- and 32-byte keys are accepted.
	ErrKeyLength = errors.New("aead: key length does not correspond to a valid GCM cipher")

	// ErrIVLength is returned when an IV is not exactly one block long.
	ErrIVLength = errors.New("aead: IV length does not correspond to a valid GCM cipher")

	// ErrEnvelopeTooShort is returned when an envelope is shorter than the
	// minimum IV-plus-tag framing.
	ErrEnvelopeTooShort = errors.New("aead: envelope shorter than IV and tag")

	// ErrAuthentication is returned when the envelope tag does not verify.
	ErrAuthentication = errors.New("aead: envelope authentication failed")
)

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

package certstore

import "errors"

var (
	// ErrDecode is returned when certificate bytes cannot be parsed.
	ErrDecode = errors.New("certstore: malformed certificate")

	// ErrNoCertificate is returned when a PEM source holds no CERTIFICATE block.
	ErrNoCertificate = errors.New("certstore: no certificate found")

	// ErrMultipleCertificates is returned when a slot that must hold exactly
	// one certificate holds more than one.
	ErrMultipleCertificates = errors.New("certstore: expected exactly one certificate")
)

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

package devid

import "errors"

var (
	// ErrUnsupportedKeyType is returned when a certificate does not hold an
	// RSA, RSA-PSS or EC public key.
	ErrUnsupportedKeyType = errors.New("devid: certificate does not hold an RSA or EC key")

	// ErrHardwareKey is returned when the hardware-resident public key
	// structure cannot be decoded.
	ErrHardwareKey = errors.New("devid: malformed hardware public key")
)

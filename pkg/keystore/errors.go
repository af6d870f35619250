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

package keystore

import "errors"

var (
	// ErrDecode is returned when private key bytes cannot be parsed.
	ErrDecode = errors.New("keystore: malformed private key")

	// ErrPassphraseRequired is returned when an encrypted key is loaded
	// without a usable passphrase.
	ErrPassphraseRequired = errors.New("keystore: private key is encrypted and requires a passphrase")

	// ErrUnsupportedKeyType is returned for key families the agent does not
	// issue. The surrounding protocol only issues RSA identity keys.
	ErrUnsupportedKeyType = errors.New("keystore: operation not implemented for this key type")
)

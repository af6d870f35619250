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

// Passphrase captures the three states a private key file passphrase can be
// in: not supplied, supplied but empty, and supplied with a secret. Only the
// last state encrypts; the first two are distinct on the wire of the calling
// protocol but both mean cleartext PEM. Modelling the states explicitly
// keeps the encryption decision auditable instead of hiding it behind
// emptiness checks on an optional string.
type Passphrase struct {
	supplied bool
	secret   string
}

// NoPassphrase returns the not-supplied state. Keys are written and read as
// cleartext PEM.
func NoPassphrase() Passphrase {
	return Passphrase{}
}

// WithPassphrase returns the supplied state. An empty secret follows the
// legacy convention and means cleartext PEM; a non-empty secret encrypts.
func WithPassphrase(secret string) Passphrase {
	return Passphrase{supplied: true, secret: secret}
}

// Encrypts reports whether this passphrase enables encryption at rest.
func (p Passphrase) Encrypts() bool {
	return p.supplied && p.secret != ""
}

func (p Passphrase) secretBytes() []byte {
	return []byte(p.secret)
}

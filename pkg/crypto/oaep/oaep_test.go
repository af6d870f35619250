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

package oaep

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-attest/internal/testutil"
)

// OAEP is randomized, so known ciphertexts cannot be asserted; a round trip
// through the peer-parameter encryptor is the compatibility check.
func TestDecryptRoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	plaintext := []byte("0123456789012345")

	ciphertext, err := testutil.OAEPEncrypt(&key.PublicKey, plaintext)
	require.NoError(t, err)

	got, err := Decrypt(key, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecryptWrongKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	ciphertext, err := testutil.OAEPEncrypt(&key.PublicKey, []byte("secret"))
	require.NoError(t, err)

	_, err = Decrypt(other, ciphertext)
	assert.Error(t, err)
}

func TestDecryptMalformedCiphertext(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = Decrypt(key, []byte("too short"))
	assert.Error(t, err)
}

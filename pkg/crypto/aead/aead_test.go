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

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelopes produced by the counterpart system, recorded as known answers.
const (
	envelopeAES128 = "4142434445464748494A4B4C4D4E4F50B2198661586C9839CCDD0B1D5B4FF92FA9C0E6477C4E8E42C19ACD9E8061DD1E759401337DA285A70580E6A2E10B5D3A09994F46D90AB6"
	envelopeAES256 = "4142434445464748494A4B4C4D4E4F50FCE7CA78C08FB1D5E04DB3C4AA6B6ED2F09C4AD7985BD1DB9FF15F9FDA869D0C01B27FF4618737BB53C84D256455AAB53B9AC7EAF88C4B"
)

var (
	key128    = []byte("0123456789012345")
	key256    = []byte("01234567890123450123456789012345")
	testIV    = []byte("ABCDEFGHIJKLMNOP")
	plaintext = []byte("test string, longer than the block size")
)

func TestEncryptKnownAnswerAES128(t *testing.T) {
	envelope, err := Encrypt(key128, testIV, plaintext)
	require.NoError(t, err)
	assert.Equal(t, envelopeAES128, strings.ToUpper(hex.EncodeToString(envelope)))
}

func TestEncryptKnownAnswerAES256(t *testing.T) {
	envelope, err := Encrypt(key256, testIV, plaintext)
	require.NoError(t, err)
	assert.Equal(t, envelopeAES256, strings.ToUpper(hex.EncodeToString(envelope)))
}

func TestDecryptKnownAnswerAES128(t *testing.T) {
	envelope, err := hex.DecodeString(envelopeAES128)
	require.NoError(t, err)

	got, err := Decrypt(key128, envelope)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecryptKnownAnswerAES256(t *testing.T) {
	envelope, err := hex.DecodeString(envelopeAES256)
	require.NoError(t, err)

	got, err := Decrypt(key256, envelope)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestRoundTrip(t *testing.T) {
	for _, key := range [][]byte{key128, key256} {
		envelope, err := Encrypt(key, testIV, plaintext)
		require.NoError(t, err)

		got, err := Decrypt(key, envelope)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestRoundTripEmptyPlaintext(t *testing.T) {
	envelope, err := Encrypt(key128, testIV, nil)
	require.NoError(t, err)
	assert.Len(t, envelope, 2*BlockSize)

	got, err := Decrypt(key128, envelope)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInvalidKeyLength(t *testing.T) {
	shortKey := key256[:31]

	_, err := Encrypt(shortKey, testIV, plaintext)
	assert.ErrorIs(t, err, ErrKeyLength)

	envelope, err := hex.DecodeString(envelopeAES256)
	require.NoError(t, err)
	_, err = Decrypt(shortKey, envelope)
	assert.ErrorIs(t, err, ErrKeyLength)

	// 24-byte AES keys are valid for AES-192 but have no place in this
	// protocol.
	_, err = Encrypt(make([]byte, 24), testIV, plaintext)
	assert.ErrorIs(t, err, ErrKeyLength)
}

func TestInvalidIVLength(t *testing.T) {
	_, err := Encrypt(key256, testIV[:14], plaintext)
	assert.ErrorIs(t, err, ErrIVLength)
}

func TestDecryptShortEnvelope(t *testing.T) {
	short, err := hex.DecodeString("41424344")
	require.NoError(t, err)
	_, err = Decrypt(key128, short)
	assert.ErrorIs(t, err, ErrEnvelopeTooShort)

	_, err = Decrypt(key128, make([]byte, 2*BlockSize-1))
	assert.ErrorIs(t, err, ErrEnvelopeTooShort)
}

func TestDecryptTamperedEnvelope(t *testing.T) {
	envelope, err := Encrypt(key128, testIV, plaintext)
	require.NoError(t, err)

	for _, i := range []int{0, BlockSize, len(envelope) - 1} {
		tampered := make([]byte, len(envelope))
		copy(tampered, envelope)
		tampered[i] ^= 0x01
		_, err := Decrypt(key128, tampered)
		assert.ErrorIs(t, err, ErrAuthentication)
	}
}

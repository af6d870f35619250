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

// Package aead encodes and decodes the symmetric envelope used to deliver
// secrets to the agent.
//
// The wire layout is fixed: a 16-byte IV, the ciphertext, and a trailing
// 16-byte tag, with no associated data. The cipher is AES-GCM, selected by
// key length (16 bytes for AES-128, 32 for AES-256). The counterpart system
// frames both the IV and the tag at one AES block each, even though GCM's
// native IV size is 12 bytes, so this framing must be preserved exactly.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	// BlockSize is the AES block size, used for both the IV and tag fields
	// of the envelope.
	BlockSize = aes.BlockSize

	aes128KeyLength = 16
	aes256KeyLength = 32
)

// Decrypt opens an IV || ciphertext || tag envelope with the given key and
// returns the plaintext. Envelopes shorter than two blocks fail with
// ErrEnvelopeTooShort; a tag that does not verify fails with
// ErrAuthentication.
func Decrypt(key, envelope []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(envelope) < 2*BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrEnvelopeTooShort, len(envelope))
	}

	iv := envelope[:BlockSize]
	// GCM expects the tag appended to the ciphertext, which is exactly the
	// envelope's remaining layout.
	sealed := envelope[BlockSize:]

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// Encrypt seals plaintext under key with the given one-block IV and returns
// the IV || ciphertext || tag envelope. Production traffic only decrypts;
// this entry point exists for round-trip tests and peer simulation.
func Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrIVLength, len(iv))
	}

	envelope := make([]byte, 0, BlockSize+len(plaintext)+gcm.Overhead())
	envelope = append(envelope, iv...)
	return gcm.Seal(envelope, iv, plaintext, nil), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case aes128KeyLength, aes256KeyLength:
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	return cipher.NewGCMWithNonceSize(block, BlockSize)
}

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

// Package devid classifies certificates against the TCG device-identity key
// templates and checks certificate keys against TPM-resident public keys.
//
// The hardware public key is the opaque TPMT_PUBLIC structure produced by
// the TPM collaborator; this package only decodes it, it never executes TPM
// commands.
package devid

import (
	"bytes"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/asn1"
	"fmt"

	"github.com/google/go-tpm/tpm2"
)

// Classify maps a certificate's key type, size and curve to a
// device-identity template label. Keys that match no published template
// classify as TemplateUnknown; keys outside the RSA and EC families fail
// with ErrUnsupportedKeyType.
func Classify(cert *x509.Certificate) (Template, error) {
	key, err := parseCertKey(cert)
	if err != nil {
		return TemplateUnknown, err
	}

	if key.class.isRSA() {
		if key.bits == 2048 {
			return TemplateH1, nil
		}
		return TemplateUnknown, nil
	}

	switch key.bits {
	case 256:
		if key.class == KeyClassECSecp256k1 {
			return TemplateH2, nil
		}
		return TemplateH5, nil
	case 384:
		return TemplateH3, nil
	case 521:
		return TemplateH4, nil
	}
	return TemplateUnknown, nil
}

// MatchesHardwareKey reports whether the certificate's embedded public key
// equals the hardware-resident public key. Both sides are decoded to
// canonical numeric form and compared by value: modulus and exponent for
// RSA, curve and uncompressed point for EC. A key family mismatch is a
// non-match, not an error; a certificate key outside the RSA and EC
// families fails with ErrUnsupportedKeyType.
func MatchesHardwareKey(cert *x509.Certificate, hardwareKey *tpm2.TPMTPublic) (bool, error) {
	key, err := parseCertKey(cert)
	if err != nil {
		return false, err
	}

	switch hardwareKey.Type {
	case tpm2.TPMAlgRSA:
		if !key.class.isRSA() {
			return false, nil
		}
		detail, err := hardwareKey.Parameters.RSADetail()
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrHardwareKey, err)
		}
		unique, err := hardwareKey.Unique.RSA()
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrHardwareKey, err)
		}
		hwPub, err := tpm2.RSAPub(detail, unique)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrHardwareKey, err)
		}
		return key.modulus.Cmp(hwPub.N) == 0 && key.exponent == hwPub.E, nil

	case tpm2.TPMAlgECC:
		if !key.class.isEC() {
			return false, nil
		}
		detail, err := hardwareKey.Parameters.ECCDetail()
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrHardwareKey, err)
		}
		unique, err := hardwareKey.Unique.ECC()
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrHardwareKey, err)
		}
		curve, err := detail.CurveID.Curve()
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrHardwareKey, err)
		}
		if !key.curveOID.Equal(curveOID(curve)) {
			return false, nil
		}
		hwPoint := uncompressedPoint(curve, unique.X.Buffer, unique.Y.Buffer)
		return bytes.Equal(key.point, hwPoint), nil
	}

	return false, fmt.Errorf("%w: algorithm 0x%x", ErrHardwareKey, uint16(hardwareKey.Type))
}

func curveOID(curve elliptic.Curve) asn1.ObjectIdentifier {
	switch curve {
	case elliptic.P256():
		return oidCurveP256
	case elliptic.P384():
		return oidCurveP384
	case elliptic.P521():
		return oidCurveP521
	}
	return nil
}

// uncompressedPoint encodes an EC point as 0x04 || X || Y with coordinates
// left-padded to the curve's field size.
func uncompressedPoint(curve elliptic.Curve, x, y []byte) []byte {
	byteLen := (curve.Params().BitSize + 7) / 8
	out := make([]byte, 1+2*byteLen)
	out[0] = 4
	copy(out[1+byteLen-len(x):1+byteLen], x)
	copy(out[1+2*byteLen-len(y):], y)
	return out
}

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

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"math/big"
)

// Key classification works on the certificate's raw SubjectPublicKeyInfo
// rather than on crypto/x509's materialized key object. RSA-PSS and
// SECP256K1 keys are valid template inputs but the standard library refuses
// to decode them, so the algorithm and named-curve identifiers are read
// straight from the ASN.1.

var (
	oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidRSAPSS        = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}
	oidECPublicKey   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

	oidCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidCurveP256      = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidCurveP384      = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidCurveP521      = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

type subjectPublicKeyInfo struct {
	Algorithm        pkix.AlgorithmIdentifier
	SubjectPublicKey asn1.BitString
}

type rsaPublicKey struct {
	N *big.Int
	E int
}

// certKey is the canonical numeric form of a certificate public key:
// modulus and exponent for RSA families, named curve and uncompressed point
// for EC.
type certKey struct {
	class    KeyClass
	bits     int
	modulus  *big.Int
	exponent int
	curveOID asn1.ObjectIdentifier
	point    []byte
}

func parseCertKey(cert *x509.Certificate) (*certKey, error) {
	var spki subjectPublicKeyInfo
	if rest, err := asn1.Unmarshal(cert.RawSubjectPublicKeyInfo, &spki); err != nil || len(rest) != 0 {
		return nil, fmt.Errorf("%w: undecodable SubjectPublicKeyInfo", ErrUnsupportedKeyType)
	}

	alg := spki.Algorithm.Algorithm
	switch {
	case alg.Equal(oidRSAEncryption), alg.Equal(oidRSAPSS):
		var pub rsaPublicKey
		if rest, err := asn1.Unmarshal(spki.SubjectPublicKey.RightAlign(), &pub); err != nil || len(rest) != 0 {
			return nil, fmt.Errorf("%w: undecodable RSA key", ErrUnsupportedKeyType)
		}
		class := KeyClassRSA
		if alg.Equal(oidRSAPSS) {
			class = KeyClassRSAPSS
		}
		return &certKey{
			class:    class,
			bits:     pub.N.BitLen(),
			modulus:  pub.N,
			exponent: pub.E,
		}, nil

	case alg.Equal(oidECPublicKey):
		var curveOID asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(spki.Algorithm.Parameters.FullBytes, &curveOID); err != nil {
			return nil, fmt.Errorf("%w: EC key without named curve", ErrUnsupportedKeyType)
		}
		key := &certKey{
			curveOID: curveOID,
			point:    spki.SubjectPublicKey.RightAlign(),
		}
		switch {
		case curveOID.Equal(oidCurveSecp256k1):
			key.class, key.bits = KeyClassECSecp256k1, 256
		case curveOID.Equal(oidCurveP384):
			key.class, key.bits = KeyClassECP384, 384
		case curveOID.Equal(oidCurveP521):
			key.class, key.bits = KeyClassECP521, 521
		case curveOID.Equal(oidCurveP256):
			key.class, key.bits = KeyClassECOther, 256
		default:
			key.class, key.bits = KeyClassECOther, curveBitsFromPoint(key.point)
		}
		return key, nil
	}

	return nil, fmt.Errorf("%w: algorithm %v", ErrUnsupportedKeyType, alg)
}

// curveBitsFromPoint infers the field size of an unrecognized curve from its
// uncompressed point encoding. A 66-byte coordinate is P-521's 521-bit field.
func curveBitsFromPoint(point []byte) int {
	if len(point) < 3 || point[0] != 4 {
		return 0
	}
	coordLen := (len(point) - 1) / 2
	if coordLen == 66 {
		return 521
	}
	return coordLen * 8
}

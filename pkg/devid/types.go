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

// Template identifies which device-identity key profile a certificate's key
// matches, per the TCG "TPM 2.0 Keys for Device Identity and Attestation"
// template table.
type Template string

const (
	// TemplateUnknown means the key matches no published template.
	TemplateUnknown Template = ""

	// TemplateH1 is RSA 2048.
	TemplateH1 Template = "H-1"

	// TemplateH2 is ECC SECP256K1.
	TemplateH2 Template = "H-2"

	// TemplateH3 is ECC NIST P-384.
	TemplateH3 Template = "H-3"

	// TemplateH4 is ECC NIST P-521.
	TemplateH4 Template = "H-4"

	// TemplateH5 is 256-bit ECC on a curve other than SECP256K1.
	TemplateH5 Template = "H-5"
)

// KeyClass is the decoded key family of a certificate's
// SubjectPublicKeyInfo. New key families are additions to this set, not
// edits to branching logic scattered across the package.
type KeyClass int

const (
	// KeyClassUnsupported covers every key family the trust layer does not
	// handle.
	KeyClassUnsupported KeyClass = iota

	// KeyClassRSA is an rsaEncryption key.
	KeyClassRSA

	// KeyClassRSAPSS is an id-RSASSA-PSS key. The Go standard library cannot
	// materialize these, so they are decoded from the raw
	// SubjectPublicKeyInfo.
	KeyClassRSAPSS

	// KeyClassECSecp256k1 is an EC key on SECP256K1.
	KeyClassECSecp256k1

	// KeyClassECP384 is an EC key on NIST P-384.
	KeyClassECP384

	// KeyClassECP521 is an EC key on NIST P-521.
	KeyClassECP521

	// KeyClassECOther is an EC key on any other named curve.
	KeyClassECOther
)

// String returns the key class name used in error messages and CLI output.
func (c KeyClass) String() string {
	switch c {
	case KeyClassRSA:
		return "RSA"
	case KeyClassRSAPSS:
		return "RSA-PSS"
	case KeyClassECSecp256k1:
		return "EC-SECP256K1"
	case KeyClassECP384:
		return "EC-P384"
	case KeyClassECP521:
		return "EC-P521"
	case KeyClassECOther:
		return "EC"
	default:
		return "unsupported"
	}
}

func (c KeyClass) isRSA() bool {
	return c == KeyClassRSA || c == KeyClassRSAPSS
}

func (c KeyClass) isEC() bool {
	switch c {
	case KeyClassECSecp256k1, KeyClassECP384, KeyClassECP521, KeyClassECOther:
		return true
	}
	return false
}

package cryptoalg

import "strconv"

// unknownName is the textual form of every Unknown tag.
const unknownName = "UNKNOWN"

// CipherMode selects the AES mode of operation.
type CipherMode int

// Supported AES modes. ModeUnknown is the zero value so an unset mode is always rejected.
const (
	ModeUnknown CipherMode = iota
	ModeECB
	ModeCBC
	ModeOFB
	ModeCFB
	ModeXTS
	ModeCCM
	ModeEAX
	ModeGCM
)

var cipherModeNames = map[CipherMode]string{
	ModeECB: "ECB",
	ModeCBC: "CBC",
	ModeOFB: "OFB",
	ModeCFB: "CFB",
	ModeXTS: "XTS",
	ModeCCM: "CCM",
	ModeEAX: "EAX",
	ModeGCM: "GCM",
}

// ParseCipherMode converts a mode name such as "GCM" into its tag.
// Unrecognized names yield ModeUnknown.
func ParseCipherMode(name string) CipherMode {
	return lookup(cipherModeNames, name, ModeUnknown)
}

// String returns the canonical mode name.
func (m CipherMode) String() string {
	return nameOf(cipherModeNames, m)
}

// RequiresIV reports whether the mode consumes an IV or nonce.
func (m CipherMode) RequiresIV() bool {
	return m != ModeECB && m != ModeUnknown
}

// IsStreaming reports whether the mode processes data without block padding.
// CCM is authenticated as well and is covered by RequiresNoPadding.
func (m CipherMode) IsStreaming() bool {
	switch m {
	case ModeOFB, ModeCFB, ModeXTS, ModeEAX, ModeGCM:
		return true
	default:
		return false
	}
}

// IsAuthenticated reports whether the mode produces and verifies an integrity tag.
func (m CipherMode) IsAuthenticated() bool {
	return m == ModeCCM || m == ModeEAX || m == ModeGCM
}

// RequiresNoPadding reports whether only PaddingNone is legal for the mode.
func (m CipherMode) RequiresNoPadding() bool {
	return m.IsStreaming() || m.IsAuthenticated()
}

// PaddingScheme selects the block padding for ECB and CBC.
type PaddingScheme int

// Supported symmetric padding schemes.
const (
	PaddingUnknown PaddingScheme = iota
	PaddingNone
	PaddingZeros
	PaddingPKCS7
	PaddingOneAndZeros
	PaddingW3C
	PaddingDefault
)

var paddingSchemeNames = map[PaddingScheme]string{
	PaddingNone:        "NONE",
	PaddingZeros:       "ZEROS",
	PaddingPKCS7:       "PKCS7",
	PaddingOneAndZeros: "ONE_AND_ZEROS",
	PaddingW3C:         "W3C",
	PaddingDefault:     "DEFAULT",
}

// ParsePaddingScheme converts a padding name into its tag.
func ParsePaddingScheme(name string) PaddingScheme {
	return lookup(paddingSchemeNames, name, PaddingUnknown)
}

// String returns the canonical padding name.
func (p PaddingScheme) String() string {
	return nameOf(paddingSchemeNames, p)
}

// KeyBits is the AES key strength in bits.
type KeyBits int

// Supported AES key strengths.
const (
	KeyBitsUnknown KeyBits = 0
	KeyBits128     KeyBits = 128
	KeyBits192     KeyBits = 192
	KeyBits256     KeyBits = 256
)

// KeyBitsFromInt converts a bit count into its tag.
func KeyBitsFromInt(bits int) KeyBits {
	switch KeyBits(bits) {
	case KeyBits128, KeyBits192, KeyBits256:
		return KeyBits(bits)
	default:
		return KeyBitsUnknown
	}
}

// KeyLength returns the number of key bytes the mode needs for these bits.
// XTS concatenates two independent keys and therefore needs twice as many.
func (b KeyBits) KeyLength(mode CipherMode) int {
	n := int(b) / 8
	if mode == ModeXTS {
		n *= 2
	}
	return n
}

// String returns the decimal bit count, or UNKNOWN.
func (b KeyBits) String() string {
	switch b {
	case KeyBits128:
		return "128"
	case KeyBits192:
		return "192"
	case KeyBits256:
		return "256"
	default:
		return unknownName
	}
}

// EncodingFormat selects the textual wrapping of ciphertext.
type EncodingFormat int

// Supported encodings.
const (
	EncodingUnknown EncodingFormat = iota
	EncodingNone
	EncodingBase64
	EncodingHex
)

var encodingFormatNames = map[EncodingFormat]string{
	EncodingNone:   "NONE",
	EncodingBase64: "BASE64",
	EncodingHex:    "HEX",
}

// ParseEncodingFormat converts an encoding name into its tag.
func ParseEncodingFormat(name string) EncodingFormat {
	return lookup(encodingFormatNames, name, EncodingUnknown)
}

// String returns the canonical encoding name.
func (e EncodingFormat) String() string {
	return nameOf(encodingFormatNames, e)
}

// RSAKeySize is the RSA modulus length in bits.
type RSAKeySize int

// Supported RSA modulus sizes.
const (
	RSAKeySizeUnknown RSAKeySize = 0
	RSAKeySize512     RSAKeySize = 512
	RSAKeySize1024    RSAKeySize = 1024
	RSAKeySize2048    RSAKeySize = 2048
	RSAKeySize3072    RSAKeySize = 3072
	RSAKeySize4096    RSAKeySize = 4096
)

// RSAKeySizeFromInt converts a bit count into its tag.
func RSAKeySizeFromInt(bits int) RSAKeySize {
	switch RSAKeySize(bits) {
	case RSAKeySize512, RSAKeySize1024, RSAKeySize2048, RSAKeySize3072, RSAKeySize4096:
		return RSAKeySize(bits)
	default:
		return RSAKeySizeUnknown
	}
}

// String returns the decimal bit count, or UNKNOWN.
func (s RSAKeySize) String() string {
	if RSAKeySizeFromInt(int(s)) == RSAKeySizeUnknown {
		return unknownName
	}
	return strconv.Itoa(int(s))
}

// PEMFormat selects the PEM header convention.
type PEMFormat int

// Supported header conventions.
const (
	PEMFormatUnknown PEMFormat = iota
	// PEMFormatPKCS writes "PUBLIC KEY" / "PRIVATE KEY" headers.
	PEMFormatPKCS
	// PEMFormatRSA writes "RSA PUBLIC KEY" / "RSA PRIVATE KEY" headers.
	PEMFormatRSA
)

var pemFormatNames = map[PEMFormat]string{
	PEMFormatPKCS: "PKCS",
	PEMFormatRSA:  "RSA",
}

// ParsePEMFormat converts a header convention name into its tag.
func ParsePEMFormat(name string) PEMFormat {
	return lookup(pemFormatNames, name, PEMFormatUnknown)
}

// String returns the canonical convention name.
func (f PEMFormat) String() string {
	return nameOf(pemFormatNames, f)
}

// PublicHeader returns the PEM block type used for public keys.
func (f PEMFormat) PublicHeader() string {
	if f == PEMFormatRSA {
		return "RSA PUBLIC KEY"
	}
	return "PUBLIC KEY"
}

// PrivateHeader returns the PEM block type used for private keys.
func (f PEMFormat) PrivateHeader() string {
	if f == PEMFormatRSA {
		return "RSA PRIVATE KEY"
	}
	return "PRIVATE KEY"
}

// RSAPadding selects the RSA encryption padding.
type RSAPadding int

// Supported RSA paddings.
const (
	RSAPaddingUnknown RSAPadding = iota
	RSAPaddingPKCS1v15
	RSAPaddingOAEPSHA1
	RSAPaddingOAEPSHA256
	RSAPaddingOAEPSHA512
	RSAPaddingNone
)

var rsaPaddingNames = map[RSAPadding]string{
	RSAPaddingPKCS1v15:   "PKCS1v15",
	RSAPaddingOAEPSHA1:   "OAEP_SHA1",
	RSAPaddingOAEPSHA256: "OAEP_SHA256",
	RSAPaddingOAEPSHA512: "OAEP_SHA512",
	RSAPaddingNone:       "NO_PADDING",
}

// ParseRSAPadding converts an RSA padding name into its tag.
func ParseRSAPadding(name string) RSAPadding {
	return lookup(rsaPaddingNames, name, RSAPaddingUnknown)
}

// String returns the canonical padding name.
func (p RSAPadding) String() string {
	return nameOf(rsaPaddingNames, p)
}

func lookup[T comparable](names map[T]string, name string, unknown T) T {
	for tag, n := range names {
		if n == name {
			return tag
		}
	}
	return unknown
}

func nameOf[T comparable](names map[T]string, tag T) string {
	if n, ok := names[tag]; ok {
		return n
	}
	return unknownName
}

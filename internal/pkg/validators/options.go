package validators

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/go-playground/validator/v10"
)

// Validation tags registered by New.
const (
	TagCipherMode    = "cipher_mode"
	TagAESPadding    = "aes_padding"
	TagAESKeyBits    = "aes_key_bits"
	TagEncoding      = "encoding_format"
	TagTextEncoding  = "text_encoding_format"
	TagRSAKeySize    = "rsa_key_size"
	TagPEMFormat     = "pem_format"
	TagRSAPadding    = "rsa_padding"
	TagKeySize       = "keysize"
	TagValueEncoding = "value_encoding"
)

// Value encodings accepted for keys and IVs supplied as strings.
const (
	ValueEncodingText = cryptoalg.ValueEncodingText
	ValueEncodingHex  = cryptoalg.ValueEncodingHex
)

// CipherModeValidation accepts any known AES mode name.
func CipherModeValidation(fl validator.FieldLevel) bool {
	return cryptoalg.ParseCipherMode(fl.Field().String()) != cryptoalg.ModeUnknown
}

// AESPaddingValidation accepts any known symmetric padding name.
func AESPaddingValidation(fl validator.FieldLevel) bool {
	return cryptoalg.ParsePaddingScheme(fl.Field().String()) != cryptoalg.PaddingUnknown
}

// AESKeyBitsValidation accepts 128, 192 and 256.
func AESKeyBitsValidation(fl validator.FieldLevel) bool {
	return cryptoalg.KeyBitsFromInt(int(fl.Field().Int())) != cryptoalg.KeyBitsUnknown
}

// EncodingValidation accepts NONE, BASE64 and HEX.
func EncodingValidation(fl validator.FieldLevel) bool {
	return cryptoalg.ParseEncodingFormat(fl.Field().String()) != cryptoalg.EncodingUnknown
}

// TextEncodingValidation accepts BASE64 and HEX, the encodings that survive a JSON string.
func TextEncodingValidation(fl validator.FieldLevel) bool {
	switch cryptoalg.ParseEncodingFormat(fl.Field().String()) {
	case cryptoalg.EncodingBase64, cryptoalg.EncodingHex:
		return true
	default:
		return false
	}
}

// RSAKeySizeValidation accepts the supported modulus sizes.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	return cryptoalg.RSAKeySizeFromInt(int(fl.Field().Int())) != cryptoalg.RSAKeySizeUnknown
}

// PEMFormatValidation accepts PKCS and RSA.
func PEMFormatValidation(fl validator.FieldLevel) bool {
	return cryptoalg.ParsePEMFormat(fl.Field().String()) != cryptoalg.PEMFormatUnknown
}

// RSAPaddingValidation accepts any known RSA padding name.
func RSAPaddingValidation(fl validator.FieldLevel) bool {
	return cryptoalg.ParseRSAPadding(fl.Field().String()) != cryptoalg.RSAPaddingUnknown
}

// ValueEncodingValidation accepts TEXT and HEX in any case.
func ValueEncodingValidation(fl validator.FieldLevel) bool {
	v := strings.ToUpper(fl.Field().String())
	return v == ValueEncodingText || v == ValueEncodingHex
}

// New returns a validator with every crypto option tag registered.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Register adds the crypto option tags to an existing validator.
func Register(v *validator.Validate) error {
	funcs := map[string]validator.Func{
		TagCipherMode:    CipherModeValidation,
		TagAESPadding:    AESPaddingValidation,
		TagAESKeyBits:    AESKeyBitsValidation,
		TagEncoding:      EncodingValidation,
		TagTextEncoding:  TextEncodingValidation,
		TagRSAKeySize:    RSAKeySizeValidation,
		TagPEMFormat:     PEMFormatValidation,
		TagRSAPadding:    RSAPaddingValidation,
		TagKeySize:       KeySizeValidation,
		TagValueEncoding: ValueEncodingValidation,
	}
	for tag, fn := range funcs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}

package app

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
)

// orDefault returns name, or fallback when name is blank.
func orDefault(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return strings.TrimSpace(name)
}

func parseMode(op, name string) (cryptoalg.CipherMode, error) {
	mode := cryptoalg.ParseCipherMode(name)
	if mode == cryptoalg.ModeUnknown {
		return mode, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %q", cryptoalg.ErrUnknownMode, name))
	}
	return mode, nil
}

func parsePadding(op, name string) (cryptoalg.PaddingScheme, error) {
	padding := cryptoalg.ParsePaddingScheme(name)
	if padding == cryptoalg.PaddingUnknown {
		return padding, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %q", cryptoalg.ErrUnknownPadding, name))
	}
	return padding, nil
}

func parseKeyBits(op string, bits int) (cryptoalg.KeyBits, error) {
	keyBits := cryptoalg.KeyBitsFromInt(bits)
	if keyBits == cryptoalg.KeyBitsUnknown {
		return keyBits, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %d", cryptoalg.ErrUnknownKeyBits, bits))
	}
	return keyBits, nil
}

func parseEncoding(op, name string) (cryptoalg.EncodingFormat, error) {
	encoding := cryptoalg.ParseEncodingFormat(name)
	if encoding == cryptoalg.EncodingUnknown {
		return encoding, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %q", cryptoalg.ErrUnknownEncoding, name))
	}
	return encoding, nil
}

func parseKeySize(op string, bits int) (cryptoalg.RSAKeySize, error) {
	size := cryptoalg.RSAKeySizeFromInt(bits)
	if size == cryptoalg.RSAKeySizeUnknown {
		return size, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %d", cryptoalg.ErrUnknownKeySize, bits))
	}
	return size, nil
}

func parsePEMFormat(op, name string) (cryptoalg.PEMFormat, error) {
	format := cryptoalg.ParsePEMFormat(name)
	if format == cryptoalg.PEMFormatUnknown {
		return format, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %q", cryptoalg.ErrUnknownPEMFormat, name))
	}
	return format, nil
}

func parseRSAPadding(op, name string) (cryptoalg.RSAPadding, error) {
	padding := cryptoalg.ParseRSAPadding(name)
	if padding == cryptoalg.RSAPaddingUnknown {
		return padding, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %q", cryptoalg.ErrUnknownRSAPadding, name))
	}
	return padding, nil
}

// decodeValue turns a TEXT or HEX encoded key or IV into bytes. A non-empty hex value that
// decodes to nothing is reported with invalid, so it is not mistaken for an omitted value.
func decodeValue(op, value, encoding string, invalid error) ([]byte, error) {
	switch strings.ToUpper(orDefault(encoding, cryptoalg.ValueEncodingText)) {
	case cryptoalg.ValueEncodingText:
		return []byte(value), nil
	case cryptoalg.ValueEncodingHex:
		if value == "" {
			return nil, nil
		}
		decoded := cryptography.HexToBytes(value)
		if len(decoded) == 0 {
			return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: value is not valid hex", invalid))
		}
		return decoded, nil
	default:
		return nil, cryptoalg.NewConfigurationError(op, fmt.Errorf("%w: %q", cryptoalg.ErrUnknownEncoding, encoding))
	}
}

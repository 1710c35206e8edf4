package cryptography

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
)

// EncodeOutput wraps raw ciphertext in the requested textual encoding. Hex output is lowercase.
func EncodeOutput(data []byte, encoding cryptoalg.EncodingFormat) ([]byte, error) {
	switch encoding {
	case cryptoalg.EncodingNone:
		return data, nil
	case cryptoalg.EncodingBase64:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
		base64.StdEncoding.Encode(out, data)
		return out, nil
	case cryptoalg.EncodingHex:
		out := make([]byte, hex.EncodedLen(len(data)))
		hex.Encode(out, data)
		return out, nil
	default:
		return nil, cryptoalg.NewConfigurationError("encode output", cryptoalg.ErrUnknownEncoding)
	}
}

// DecodeInput reverses EncodeOutput. Hex input is accepted in either case.
func DecodeInput(data []byte, encoding cryptoalg.EncodingFormat) ([]byte, error) {
	const op = "decode input"

	switch encoding {
	case cryptoalg.EncodingNone:
		return data, nil
	case cryptoalg.EncodingBase64:
		out := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
		n, err := base64.StdEncoding.Decode(out, data)
		if err != nil {
			return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidEncoding, err))
		}
		return out[:n], nil
	case cryptoalg.EncodingHex:
		out := make([]byte, hex.DecodedLen(len(data)))
		n, err := hex.Decode(out, data)
		if err != nil {
			return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidEncoding, err))
		}
		return out[:n], nil
	default:
		return nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownEncoding)
	}
}

// HexToBytes decodes s and returns an empty slice when s has odd length or a non-hex character.
func HexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		return []byte{}
	}
	return b
}

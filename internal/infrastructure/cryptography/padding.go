package cryptography

import (
	"bytes"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
)

// pad extends data to a whole number of blocks according to scheme.
func pad(data []byte, scheme cryptoalg.PaddingScheme, random io.Reader) ([]byte, error) {
	rem := len(data) % blockSize
	n := blockSize - rem

	switch scheme {
	case cryptoalg.PaddingNone:
		if rem != 0 {
			return nil, fmt.Errorf("%w: %d bytes is not a multiple of the block size", cryptoalg.ErrInvalidInputLength, len(data))
		}
		return data, nil

	case cryptoalg.PaddingZeros:
		if rem == 0 {
			return data, nil
		}
		return append(clone(data), make([]byte, n)...), nil

	case cryptoalg.PaddingPKCS7, cryptoalg.PaddingDefault:
		return append(clone(data), bytes.Repeat([]byte{byte(n)}, n)...), nil

	case cryptoalg.PaddingOneAndZeros:
		out := append(clone(data), 0x80)
		return append(out, make([]byte, n-1)...), nil

	case cryptoalg.PaddingW3C:
		filler := make([]byte, n)
		if _, err := io.ReadFull(random, filler[:n-1]); err != nil {
			return nil, fmt.Errorf("failed to generate padding: %w", err)
		}
		filler[n-1] = byte(n)
		return append(clone(data), filler...), nil

	default:
		return nil, cryptoalg.ErrUnknownPadding
	}
}

// unpad removes the padding added by pad. ZEROS cannot tell padding from trailing zero plaintext
// and strips both.
func unpad(data []byte, scheme cryptoalg.PaddingScheme) ([]byte, error) {
	switch scheme {
	case cryptoalg.PaddingNone:
		return data, nil

	case cryptoalg.PaddingZeros:
		return bytes.TrimRight(data, "\x00"), nil

	case cryptoalg.PaddingPKCS7, cryptoalg.PaddingDefault:
		n, err := trailingCount(data)
		if err != nil {
			return nil, err
		}
		for _, b := range data[len(data)-n:] {
			if int(b) != n {
				return nil, fmt.Errorf("%w: inconsistent PKCS7 padding", cryptoalg.ErrInvalidPadding)
			}
		}
		return data[:len(data)-n], nil

	case cryptoalg.PaddingOneAndZeros:
		i := len(data) - 1
		for i >= 0 && len(data)-i <= blockSize && data[i] == 0 {
			i--
		}
		if i < 0 || len(data)-i > blockSize || data[i] != 0x80 {
			return nil, fmt.Errorf("%w: missing 0x80 marker", cryptoalg.ErrInvalidPadding)
		}
		return data[:i], nil

	case cryptoalg.PaddingW3C:
		n, err := trailingCount(data)
		if err != nil {
			return nil, err
		}
		return data[:len(data)-n], nil

	default:
		return nil, cryptoalg.ErrUnknownPadding
	}
}

// trailingCount reads the pad length stored in the final byte.
func trailingCount(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: no data to unpad", cryptoalg.ErrInvalidPadding)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return 0, fmt.Errorf("%w: pad length %d out of range", cryptoalg.ErrInvalidPadding, n)
	}
	return n, nil
}

func clone(b []byte) []byte {
	return append(make([]byte, 0, len(b)+blockSize), b...)
}

package cryptography

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

const (
	blockSize = 16

	ccmRecommendedNonceSize = 12
	ccmMinNonceSize         = 7
	ccmMaxNonceSize         = 13
)

// KeyMaterialValidator checks keys and IVs against the selected mode and key strength.
type KeyMaterialValidator struct {
	logger logger.Logger
	rand   io.Reader
}

// NewKeyMaterialValidator creates a validator generating missing IVs from the configured random source.
func NewKeyMaterialValidator(logger logger.Logger, opts ...Option) *KeyMaterialValidator {
	o := newProcessorOptions(opts)
	return &KeyMaterialValidator{
		logger: logger,
		rand:   o.rand,
	}
}

// InitKey verifies that key has exactly the length keyBits requires for mode.
func (v *KeyMaterialValidator) InitKey(key []byte, keyBits cryptoalg.KeyBits, mode cryptoalg.CipherMode) ([]byte, error) {
	const op = "init key"

	if cryptoalg.KeyBitsFromInt(int(keyBits)) == cryptoalg.KeyBitsUnknown {
		return nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownKeyBits)
	}
	if len(key) == 0 {
		return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: key is empty", cryptoalg.ErrInvalidKey))
	}

	want := keyBits.KeyLength(mode)
	if len(key) != want {
		return nil, cryptoalg.NewValidationError(op,
			fmt.Errorf("%w: %s-bit %s requires %d bytes, got %d", cryptoalg.ErrInvalidKey, keyBits, mode, want, len(key)))
	}

	return append([]byte(nil), key...), nil
}

// InitIV returns the IV to use for mode. ECB yields nil. An empty IV is generated when
// encrypting and rejected when decrypting.
func (v *KeyMaterialValidator) InitIV(iv []byte, mode cryptoalg.CipherMode, encrypting bool) ([]byte, error) {
	const op = "init IV"

	if mode == cryptoalg.ModeUnknown {
		return nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownMode)
	}
	if !mode.RequiresIV() {
		return nil, nil
	}

	if len(iv) == 0 {
		if !encrypting {
			return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: IV is required for decryption", cryptoalg.ErrInvalidIV))
		}
		size := blockSize
		if mode == cryptoalg.ModeCCM {
			size = ccmRecommendedNonceSize
		}
		generated := make([]byte, size)
		if _, err := io.ReadFull(v.rand, generated); err != nil {
			return nil, cryptoalg.NewLibraryError(op, fmt.Errorf("failed to generate IV: %w", err))
		}
		v.logger.Debug("Generated ", size, "-byte IV for ", mode)
		return generated, nil
	}

	if mode == cryptoalg.ModeCCM {
		if len(iv) < ccmMinNonceSize || len(iv) > ccmMaxNonceSize {
			return nil, cryptoalg.NewValidationError(op,
				fmt.Errorf("%w: CCM nonce must be %d to %d bytes, got %d", cryptoalg.ErrInvalidIV, ccmMinNonceSize, ccmMaxNonceSize, len(iv)))
		}
		if len(iv) != ccmRecommendedNonceSize {
			v.logger.Warn("CCM nonce of ", len(iv), " bytes is accepted but ", ccmRecommendedNonceSize, " bytes is recommended")
		}
		return append([]byte(nil), iv...), nil
	}

	if len(iv) != blockSize {
		return nil, cryptoalg.NewValidationError(op,
			fmt.Errorf("%w: %s requires a %d-byte IV, got %d", cryptoalg.ErrInvalidIV, mode, blockSize, len(iv)))
	}
	return append([]byte(nil), iv...), nil
}

// ValidateStreamingPadding rejects any padding but NONE for modes that do not pad.
func (v *KeyMaterialValidator) ValidateStreamingPadding(mode cryptoalg.CipherMode, padding cryptoalg.PaddingScheme) error {
	if mode.RequiresNoPadding() && padding != cryptoalg.PaddingNone {
		return cryptoalg.NewValidationError("validate padding",
			fmt.Errorf("%w: %s does not accept %s", cryptoalg.ErrPaddingNotAllowed, mode, padding))
	}
	return nil
}

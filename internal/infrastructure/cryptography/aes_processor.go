package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/ProtonMail/go-crypto/eax"
	"github.com/pion/dtls/v2/pkg/crypto/ccm"
)

const ccmTagSize = 12

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
	opts   processorOptions
	keys   *KeyMaterialValidator
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger, opts ...Option) (cryptoalg.AESProcessor, error) {
	o := newProcessorOptions(opts)
	return &aesProcessor{
		logger: logger,
		opts:   o,
		keys:   NewKeyMaterialValidator(logger, WithRandom(o.rand)),
	}, nil
}

// GenerateKey generates a random AES key for keyBits, doubled in length for XTS.
func (a *aesProcessor) GenerateKey(keyBits cryptoalg.KeyBits, mode cryptoalg.CipherMode) ([]byte, error) {
	if cryptoalg.KeyBitsFromInt(int(keyBits)) == cryptoalg.KeyBitsUnknown {
		return nil, cryptoalg.NewConfigurationError("generate key", cryptoalg.ErrUnknownKeyBits)
	}
	if mode == cryptoalg.ModeUnknown {
		return nil, cryptoalg.NewConfigurationError("generate key", cryptoalg.ErrUnknownMode)
	}

	key := make([]byte, keyBits.KeyLength(mode))
	if _, err := io.ReadFull(a.opts.rand, key); err != nil {
		return nil, cryptoalg.NewLibraryError("generate key", fmt.Errorf("failed to generate AES key: %w", err))
	}
	a.logger.Info("Generated ", keyBits, "-bit AES key for ", mode)
	return key, nil
}

// Encrypt encrypts plaintext with the configured mode and encodes the result.
func (a *aesProcessor) Encrypt(plaintext []byte, opts cryptoalg.SymmetricOptions) (ciphertext []byte, iv []byte, err error) {
	const op = "AES encrypt"
	defer func() {
		if err != nil {
			ciphertext, iv = nil, nil
		}
	}()
	defer recoverLibraryPanic(op, &err)

	key, iv, err := a.prepare(op, opts, true)
	if err != nil {
		a.logger.Error(err)
		return nil, nil, err
	}

	raw, err := a.encrypt(op, plaintext, key, iv, opts)
	if err != nil {
		a.logger.Error(err)
		return nil, nil, err
	}

	out, err := EncodeOutput(raw, opts.Encoding)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("AES-", opts.Mode, " encryption succeeded")
	return out, iv, nil
}

// Decrypt decodes and decrypts ciphertext with the configured mode.
func (a *aesProcessor) Decrypt(ciphertext []byte, opts cryptoalg.SymmetricOptions) (plaintext []byte, err error) {
	const op = "AES decrypt"
	defer func() {
		if err != nil {
			plaintext = nil
		}
	}()
	defer recoverLibraryPanic(op, &err)

	key, iv, err := a.prepare(op, opts, false)
	if err != nil {
		a.logger.Error(err)
		return nil, err
	}

	raw, err := DecodeInput(ciphertext, opts.Encoding)
	if err != nil {
		a.logger.Error(err)
		return nil, err
	}

	plaintext, err = a.decrypt(op, raw, key, iv, opts)
	if err != nil {
		a.logger.Error(err)
		return nil, err
	}

	a.logger.Info("AES-", opts.Mode, " decryption succeeded")
	return plaintext, nil
}

// prepare resolves the options into validated key material: padding, then key, then IV.
func (a *aesProcessor) prepare(op string, opts cryptoalg.SymmetricOptions, encrypting bool) ([]byte, []byte, error) {
	switch {
	case opts.Mode == cryptoalg.ModeUnknown:
		return nil, nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownMode)
	case opts.Padding == cryptoalg.PaddingUnknown:
		return nil, nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownPadding)
	case opts.Encoding == cryptoalg.EncodingUnknown:
		return nil, nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownEncoding)
	}

	if err := a.keys.ValidateStreamingPadding(opts.Mode, opts.Padding); err != nil {
		return nil, nil, err
	}
	key, err := a.keys.InitKey(opts.Key, opts.KeyBits, opts.Mode)
	if err != nil {
		return nil, nil, err
	}
	iv, err := a.keys.InitIV(opts.IV, opts.Mode, encrypting)
	if err != nil {
		return nil, nil, err
	}
	return key, iv, nil
}

func (a *aesProcessor) encrypt(op string, plaintext, key, iv []byte, opts cryptoalg.SymmetricOptions) ([]byte, error) {
	if opts.Mode == cryptoalg.ModeXTS {
		x, err := newXTS(key)
		if err != nil {
			return nil, cryptoalg.NewLibraryError(op, err)
		}
		out, err := x.Encrypt(plaintext, iv)
		if err != nil {
			return nil, cryptoalg.NewValidationError(op, err)
		}
		return out, nil
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoalg.NewLibraryError(op, fmt.Errorf("failed to create cipher: %w", err))
	}

	switch opts.Mode {
	case cryptoalg.ModeECB, cryptoalg.ModeCBC:
		padded, err := pad(plaintext, opts.Padding, a.opts.rand)
		if err != nil {
			return nil, cryptoalg.NewValidationError(op, err)
		}
		out := make([]byte, len(padded))
		if opts.Mode == cryptoalg.ModeECB {
			ecbCrypt(block.Encrypt, out, padded)
		} else {
			cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		}
		return out, nil

	case cryptoalg.ModeOFB, cryptoalg.ModeCFB:
		out := make([]byte, len(plaintext))
		newStream(opts.Mode, block, iv, true).XORKeyStream(out, plaintext)
		return out, nil

	case cryptoalg.ModeCCM, cryptoalg.ModeEAX, cryptoalg.ModeGCM:
		aead, err := newAEAD(opts.Mode, block, len(iv))
		if err != nil {
			return nil, cryptoalg.NewLibraryError(op, err)
		}
		return aead.Seal(nil, iv, plaintext, nil), nil

	default:
		return nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownMode)
	}
}

func (a *aesProcessor) decrypt(op string, ciphertext, key, iv []byte, opts cryptoalg.SymmetricOptions) ([]byte, error) {
	if opts.Mode == cryptoalg.ModeXTS {
		x, err := newXTS(key)
		if err != nil {
			return nil, cryptoalg.NewLibraryError(op, err)
		}
		out, err := x.Decrypt(ciphertext, iv)
		if err != nil {
			return nil, cryptoalg.NewValidationError(op, err)
		}
		return out, nil
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, cryptoalg.NewLibraryError(op, fmt.Errorf("failed to create cipher: %w", err))
	}

	switch opts.Mode {
	case cryptoalg.ModeECB, cryptoalg.ModeCBC:
		if len(ciphertext)%blockSize != 0 {
			return nil, cryptoalg.NewValidationError(op,
				fmt.Errorf("%w: ciphertext is not a multiple of the block size", cryptoalg.ErrInvalidInputLength))
		}
		out := make([]byte, len(ciphertext))
		if opts.Mode == cryptoalg.ModeECB {
			ecbCrypt(block.Decrypt, out, ciphertext)
		} else {
			cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
		}
		plaintext, err := unpad(out, opts.Padding)
		if err != nil {
			return nil, cryptoalg.NewValidationError(op, err)
		}
		return plaintext, nil

	case cryptoalg.ModeOFB, cryptoalg.ModeCFB:
		out := make([]byte, len(ciphertext))
		newStream(opts.Mode, block, iv, false).XORKeyStream(out, ciphertext)
		return out, nil

	case cryptoalg.ModeCCM, cryptoalg.ModeEAX, cryptoalg.ModeGCM:
		aead, err := newAEAD(opts.Mode, block, len(iv))
		if err != nil {
			return nil, cryptoalg.NewLibraryError(op, err)
		}
		if len(ciphertext) < aead.Overhead() {
			return nil, cryptoalg.NewValidationError(op,
				fmt.Errorf("%w: ciphertext shorter than the %d-byte tag", cryptoalg.ErrInvalidInputLength, aead.Overhead()))
		}
		plaintext, err := aead.Open(nil, iv, ciphertext, nil)
		if err != nil {
			return nil, cryptoalg.NewAuthenticationError(op, cryptoalg.ErrAuthenticationFailed)
		}
		return plaintext, nil

	default:
		return nil, cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownMode)
	}
}

// newAEAD builds the authenticated cipher for mode. CCM uses a 12-byte tag, EAX and GCM 16 bytes.
func newAEAD(mode cryptoalg.CipherMode, block cipher.Block, nonceSize int) (cipher.AEAD, error) {
	switch mode {
	case cryptoalg.ModeCCM:
		return ccm.NewCCM(block, ccmTagSize, nonceSize)
	case cryptoalg.ModeEAX:
		return eax.NewEAX(block)
	case cryptoalg.ModeGCM:
		return cipher.NewGCMWithNonceSize(block, nonceSize)
	default:
		return nil, cryptoalg.ErrUnknownMode
	}
}

func newStream(mode cryptoalg.CipherMode, block cipher.Block, iv []byte, encrypting bool) cipher.Stream {
	if mode == cryptoalg.ModeOFB {
		return cipher.NewOFB(block, iv)
	}
	if encrypting {
		return cipher.NewCFBEncrypter(block, iv)
	}
	return cipher.NewCFBDecrypter(block, iv)
}

// ecbCrypt applies fn to each block independently.
func ecbCrypt(fn func(dst, src []byte), dst, src []byte) {
	for off := 0; off < len(src); off += blockSize {
		fn(dst[off:off+blockSize], src[off:off+blockSize])
	}
}

// recoverLibraryPanic converts a panic raised by an underlying primitive into a library error.
func recoverLibraryPanic(op string, err *error) {
	if r := recover(); r != nil {
		*err = cryptoalg.NewLibraryError(op, fmt.Errorf("%v", r))
	}
}

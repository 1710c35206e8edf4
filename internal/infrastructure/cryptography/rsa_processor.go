package cryptography

import (
	"crypto/rsa"
	"crypto/sha1" // #nosec G505 -- OAEP_SHA1 is offered for interoperability
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"io"
	"math/big"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
	opts   processorOptions
	codec  cryptoalg.RSAKeyCodec
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger, opts ...Option) (cryptoalg.RSAProcessor, error) {
	codec, err := NewRSAKeyCodec(logger, opts...)
	if err != nil {
		return nil, err
	}
	return &rsaProcessor{
		logger: logger,
		opts:   newProcessorOptions(opts),
		codec:  codec,
	}, nil
}

// Encrypt encrypts plaintext with the public key and returns the ciphertext as base64 text.
// NOTE: the plaintext must fit in a single modulus-sized block after padding.
func (r *rsaProcessor) Encrypt(plaintext []byte, publicKeyPEM string, format cryptoalg.PEMFormat, padding cryptoalg.RSAPadding) (out []byte, err error) {
	const op = "RSA encrypt"
	defer recoverLibraryPanic(op, &err)

	if err := checkRSAOptions(op, format, padding); err != nil {
		r.logger.Error(err)
		return nil, err
	}

	publicKey, err := r.codec.LoadPublicKey(publicKeyPEM)
	if err != nil {
		return nil, err
	}

	var ciphertext []byte
	switch padding {
	case cryptoalg.RSAPaddingNone:
		ciphertext, err = r.encryptRaw(op, plaintext, publicKey)
	case cryptoalg.RSAPaddingPKCS1v15:
		ciphertext, err = rsa.EncryptPKCS1v15(r.opts.rand, publicKey, plaintext)
		err = classifyRSAError(op, err)
	default:
		ciphertext, err = rsa.EncryptOAEP(oaepHash(padding), r.opts.rand, publicKey, plaintext, nil)
		err = classifyRSAError(op, err)
	}
	if err != nil {
		r.logger.Error(err)
		return nil, err
	}

	r.logger.Info("RSA encryption with ", padding, " succeeded")
	return []byte(base64.StdEncoding.EncodeToString(ciphertext)), nil
}

// Decrypt decodes base64 ciphertext and decrypts it with the private key.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKeyPEM string, format cryptoalg.PEMFormat, padding cryptoalg.RSAPadding) (out []byte, err error) {
	const op = "RSA decrypt"
	defer recoverLibraryPanic(op, &err)

	if err := checkRSAOptions(op, format, padding); err != nil {
		r.logger.Error(err)
		return nil, err
	}

	privateKey, err := r.codec.LoadPrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(string(ciphertext))
	if err != nil {
		err = cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidEncoding, err))
		r.logger.Error(err)
		return nil, err
	}

	var plaintext []byte
	switch padding {
	case cryptoalg.RSAPaddingNone:
		plaintext, err = r.decryptRaw(op, raw, privateKey)
	case cryptoalg.RSAPaddingPKCS1v15:
		plaintext, err = rsa.DecryptPKCS1v15(nil, privateKey, raw)
		err = classifyRSAError(op, err)
	default:
		plaintext, err = rsa.DecryptOAEP(oaepHash(padding), nil, privateKey, raw, nil)
		err = classifyRSAError(op, err)
	}
	if err != nil {
		r.logger.Error(err)
		return nil, err
	}

	r.logger.Info("RSA decryption with ", padding, " succeeded")
	return plaintext, nil
}

// encryptRaw computes m^e mod n on the plaintext left-padded with zeros to the modulus size.
func (r *rsaProcessor) encryptRaw(op string, plaintext []byte, key *rsa.PublicKey) ([]byte, error) {
	k := key.Size()
	if len(plaintext) > k {
		return nil, cryptoalg.NewValidationError(op,
			fmt.Errorf("%w: %d bytes exceeds the %d-byte modulus", cryptoalg.ErrMessageTooLong, len(plaintext), k))
	}

	m := new(big.Int).SetBytes(plaintext)
	if m.Cmp(key.N) >= 0 {
		return nil, cryptoalg.NewValidationError(op,
			fmt.Errorf("%w: message representative is not smaller than the modulus", cryptoalg.ErrMessageTooLong))
	}

	c := new(big.Int).Exp(m, big.NewInt(int64(key.E)), key.N)
	return c.FillBytes(make([]byte, k)), nil
}

// decryptRaw inverts encryptRaw with a blinded private exponentiation. Leading zero bytes of the
// recovered block are stripped, so a plaintext that started with 0x00 comes back shorter.
func (r *rsaProcessor) decryptRaw(op string, ciphertext []byte, key *rsa.PrivateKey) ([]byte, error) {
	k := key.Size()
	if len(ciphertext) != k {
		return nil, cryptoalg.NewValidationError(op,
			fmt.Errorf("%w: got %d bytes, modulus is %d", cryptoalg.ErrInvalidCiphertextSize, len(ciphertext), k))
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(key.N) >= 0 {
		return nil, cryptoalg.NewValidationError(op,
			fmt.Errorf("%w: ciphertext representative is not smaller than the modulus", cryptoalg.ErrInvalidCiphertextSize))
	}

	e := big.NewInt(int64(key.E))
	blind, unblind, err := r.blindingFactors(key.N, e)
	if err != nil {
		return nil, cryptoalg.NewLibraryError(op, err)
	}

	blinded := new(big.Int).Mul(c, blind)
	blinded.Mod(blinded, key.N)
	m := new(big.Int).Exp(blinded, key.D, key.N)
	m.Mul(m, unblind)
	m.Mod(m, key.N)

	if r.opts.verifyRawDecrypt {
		if check := new(big.Int).Exp(m, e, key.N); check.Cmp(c) != 0 {
			return nil, cryptoalg.NewLibraryError(op, errors.New("raw RSA decryption failed verification"))
		}
	}

	block := m.FillBytes(make([]byte, k))
	i := 0
	for i < len(block) && block[i] == 0 {
		i++
	}
	return block[i:], nil
}

// blindingFactors draws r coprime to n and returns r^e mod n and r^-1 mod n.
func (r *rsaProcessor) blindingFactors(n, e *big.Int) (*big.Int, *big.Int, error) {
	buf := make([]byte, (n.BitLen()+7)/8)
	for attempt := 0; attempt < 16; attempt++ {
		if _, err := io.ReadFull(r.opts.rand, buf); err != nil {
			return nil, nil, fmt.Errorf("failed to generate blinding factor: %w", err)
		}
		rnd := new(big.Int).SetBytes(buf)
		rnd.Mod(rnd, n)
		if rnd.Sign() == 0 {
			continue
		}
		inv := new(big.Int).ModInverse(rnd, n)
		if inv == nil {
			continue
		}
		return new(big.Int).Exp(rnd, e, n), inv, nil
	}
	return nil, nil, errors.New("failed to find an invertible blinding factor")
}

func checkRSAOptions(op string, format cryptoalg.PEMFormat, padding cryptoalg.RSAPadding) error {
	if format == cryptoalg.PEMFormatUnknown {
		return cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownPEMFormat)
	}
	if padding == cryptoalg.RSAPaddingUnknown {
		return cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownRSAPadding)
	}
	return nil
}

func oaepHash(padding cryptoalg.RSAPadding) hash.Hash {
	switch padding {
	case cryptoalg.RSAPaddingOAEPSHA1:
		return sha1.New() // #nosec G401
	case cryptoalg.RSAPaddingOAEPSHA512:
		return sha512.New()
	default:
		return sha256.New()
	}
}

// classifyRSAError maps standard library failures onto the error taxonomy.
func classifyRSAError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rsa.ErrMessageTooLong):
		return cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrMessageTooLong, err))
	case errors.Is(err, rsa.ErrDecryption):
		return cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrInvalidPadding, err))
	default:
		return cryptoalg.NewLibraryError(op, err)
	}
}

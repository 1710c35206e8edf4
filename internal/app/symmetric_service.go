package app

import (
	"encoding/hex"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// symmetricService implements the SymmetricService interface on top of an AESProcessor
type symmetricService struct {
	aesProcessor cryptoalg.AESProcessor
	defaults     config.CryptoDefaults
	logger       logger.Logger
}

// NewSymmetricService creates a new symmetricService instance
func NewSymmetricService(aesProcessor cryptoalg.AESProcessor, defaults *config.CryptoDefaults, logger logger.Logger) (cryptoalg.SymmetricService, error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return &symmetricService{
		aesProcessor: aesProcessor,
		defaults:     *defaults,
		logger:       logger,
	}, nil
}

// GenerateKey generates a random key and returns it hex encoded.
func (s *symmetricService) GenerateKey(keyBits int, mode string) cryptoalg.Result {
	const op = "generate AES key"

	if keyBits == 0 {
		keyBits = s.defaults.AESKeyBits
	}
	bits, err := parseKeyBits(op, keyBits)
	if err != nil {
		return cryptoalg.NewResult(nil, err)
	}
	cipherMode, err := parseMode(op, orDefault(mode, s.defaults.AESMode))
	if err != nil {
		return cryptoalg.NewResult(nil, err)
	}

	key, err := s.aesProcessor.GenerateKey(bits, cipherMode)
	if err != nil {
		return cryptoalg.NewResult(nil, err)
	}
	return cryptoalg.NewResult([]byte(hex.EncodeToString(key)), nil)
}

// Encrypt encrypts req.Data taken as plain text and reports the IV that was used.
func (s *symmetricService) Encrypt(req cryptoalg.SymmetricRequest) cryptoalg.SymmetricResult {
	opts, err := s.resolve("AES encrypt", req)
	if err != nil {
		return cryptoalg.SymmetricResult{Result: cryptoalg.NewResult(nil, err)}
	}

	ciphertext, iv, err := s.aesProcessor.Encrypt([]byte(req.Data), opts)
	if err != nil {
		return cryptoalg.SymmetricResult{Result: cryptoalg.NewResult(nil, err)}
	}
	return cryptoalg.SymmetricResult{
		Result: cryptoalg.NewResult(ciphertext, nil),
		IV:     hex.EncodeToString(iv),
	}
}

// Decrypt decrypts req.Data, which must carry the encoding named in the request.
func (s *symmetricService) Decrypt(req cryptoalg.SymmetricRequest) cryptoalg.Result {
	opts, err := s.resolve("AES decrypt", req)
	if err != nil {
		return cryptoalg.NewResult(nil, err)
	}
	return cryptoalg.NewResult(s.aesProcessor.Decrypt([]byte(req.Data), opts))
}

func (s *symmetricService) resolve(op string, req cryptoalg.SymmetricRequest) (cryptoalg.SymmetricOptions, error) {
	var opts cryptoalg.SymmetricOptions
	var err error

	if opts.Mode, err = parseMode(op, orDefault(req.Mode, s.defaults.AESMode)); err != nil {
		return opts, err
	}
	if opts.Padding, err = parsePadding(op, orDefault(req.Padding, s.defaults.AESPadding)); err != nil {
		return opts, err
	}
	keyBits := req.KeyBits
	if keyBits == 0 {
		keyBits = s.defaults.AESKeyBits
	}
	if opts.KeyBits, err = parseKeyBits(op, keyBits); err != nil {
		return opts, err
	}
	if opts.Encoding, err = parseEncoding(op, orDefault(req.Encoding, s.defaults.AESEncoding)); err != nil {
		return opts, err
	}
	if opts.Key, err = decodeValue(op, req.Key, req.KeyEncoding, cryptoalg.ErrInvalidKey); err != nil {
		return opts, err
	}
	if opts.IV, err = decodeValue(op, req.IV, req.IVEncoding, cryptoalg.ErrInvalidIV); err != nil {
		return opts, err
	}

	s.logger.Debug(op, " resolved to ", opts.Mode, "/", opts.Padding, "/", opts.KeyBits, "/", opts.Encoding)
	return opts, nil
}

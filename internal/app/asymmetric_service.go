package app

import (
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// asymmetricService implements the AsymmetricService interface on top of the RSA codec and processor
type asymmetricService struct {
	keyCodec     cryptoalg.RSAKeyCodec
	rsaProcessor cryptoalg.RSAProcessor
	defaults     config.CryptoDefaults
	logger       logger.Logger
}

// NewAsymmetricService creates a new asymmetricService instance
func NewAsymmetricService(
	keyCodec cryptoalg.RSAKeyCodec,
	rsaProcessor cryptoalg.RSAProcessor,
	defaults *config.CryptoDefaults,
	logger logger.Logger,
) (cryptoalg.AsymmetricService, error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return &asymmetricService{
		keyCodec:     keyCodec,
		rsaProcessor: rsaProcessor,
		defaults:     *defaults,
		logger:       logger,
	}, nil
}

// GenerateKeyPair generates a PEM encoded key pair.
func (s *asymmetricService) GenerateKeyPair(keySize int, format string) cryptoalg.KeyPairResult {
	const op = "generate RSA key pair"

	fail := func(err error) cryptoalg.KeyPairResult {
		return cryptoalg.KeyPairResult{
			PublicKey:  cryptoalg.NewResult(nil, err),
			PrivateKey: cryptoalg.NewResult(nil, err),
		}
	}

	if keySize == 0 {
		keySize = s.defaults.RSAKeySize
	}
	size, err := parseKeySize(op, keySize)
	if err != nil {
		return fail(err)
	}
	pemFormat, err := parsePEMFormat(op, orDefault(format, s.defaults.RSAPEMFormat))
	if err != nil {
		return fail(err)
	}

	pub, priv := s.keyCodec.GenerateKeyPair(size, pemFormat)
	return cryptoalg.KeyPairResult{PublicKey: pub, PrivateKey: priv}
}

// Encrypt encrypts req.Data taken as plain text; the result is base64 text.
func (s *asymmetricService) Encrypt(req cryptoalg.AsymmetricRequest) cryptoalg.Result {
	format, padding, err := s.resolve("RSA encrypt", req)
	if err != nil {
		return cryptoalg.NewResult(nil, err)
	}
	return cryptoalg.NewResult(s.rsaProcessor.Encrypt([]byte(req.Data), req.Key, format, padding))
}

// Decrypt decrypts base64 req.Data.
func (s *asymmetricService) Decrypt(req cryptoalg.AsymmetricRequest) cryptoalg.Result {
	format, padding, err := s.resolve("RSA decrypt", req)
	if err != nil {
		return cryptoalg.NewResult(nil, err)
	}
	return cryptoalg.NewResult(s.rsaProcessor.Decrypt([]byte(req.Data), req.Key, format, padding))
}

func (s *asymmetricService) resolve(op string, req cryptoalg.AsymmetricRequest) (cryptoalg.PEMFormat, cryptoalg.RSAPadding, error) {
	format, err := parsePEMFormat(op, orDefault(req.Format, s.defaults.RSAPEMFormat))
	if err != nil {
		return format, cryptoalg.RSAPaddingUnknown, err
	}
	padding, err := parseRSAPadding(op, orDefault(req.Padding, s.defaults.RSAPadding))
	if err != nil {
		return format, padding, err
	}
	s.logger.Debug(op, " resolved to ", format, "/", padding)
	return format, padding, nil
}

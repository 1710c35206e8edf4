package cryptography

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

const (
	pemBeginMarker = "-----BEGIN "
	pemEndMarker   = "-----END "
	pemDashes      = "-----"
)

// rsaKeyCodec struct that implements the RSAKeyCodec interface
type rsaKeyCodec struct {
	logger logger.Logger
	opts   processorOptions
}

// NewRSAKeyCodec creates and returns a new instance of rsaKeyCodec
func NewRSAKeyCodec(logger logger.Logger, opts ...Option) (cryptoalg.RSAKeyCodec, error) {
	return &rsaKeyCodec{
		logger: logger,
		opts:   newProcessorOptions(opts),
	}, nil
}

// GenerateKeyPair generates an RSA key pair and encodes both halves as PEM text.
func (c *rsaKeyCodec) GenerateKeyPair(keySize cryptoalg.RSAKeySize, format cryptoalg.PEMFormat) (cryptoalg.Result, cryptoalg.Result) {
	const op = "generate RSA key pair"

	fail := func(err error) (cryptoalg.Result, cryptoalg.Result) {
		c.logger.Error(err)
		return cryptoalg.NewResult(nil, err), cryptoalg.NewResult(nil, err)
	}

	if cryptoalg.RSAKeySizeFromInt(int(keySize)) == cryptoalg.RSAKeySizeUnknown {
		return fail(cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownKeySize))
	}
	if format == cryptoalg.PEMFormatUnknown {
		return fail(cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownPEMFormat))
	}

	privateKey, err := rsa.GenerateKey(c.opts.rand, int(keySize))
	if err != nil {
		return fail(cryptoalg.NewLibraryError(op, fmt.Errorf("failed to generate RSA keys: %w", err)))
	}
	c.logger.Info("Generated ", keySize, "-bit RSA key pair")

	publicPEM, pubErr := c.EncodePublicKey(&privateKey.PublicKey, format)
	privatePEM, privErr := c.EncodePrivateKey(privateKey, format)
	return cryptoalg.NewResult([]byte(publicPEM), pubErr), cryptoalg.NewResult([]byte(privatePEM), privErr)
}

// EncodePublicKey encodes the key as a SubjectPublicKeyInfo under the header format selects.
func (c *rsaKeyCodec) EncodePublicKey(key *rsa.PublicKey, format cryptoalg.PEMFormat) (string, error) {
	const op = "encode RSA public key"

	if key == nil {
		return "", cryptoalg.NewValidationError(op, errors.New("public key cannot be nil"))
	}
	if format == cryptoalg.PEMFormatUnknown {
		return "", cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownPEMFormat)
	}

	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", cryptoalg.NewLibraryError(op, fmt.Errorf("failed to marshal public key: %w", err))
	}
	return armor(format.PublicHeader(), der), nil
}

// EncodePrivateKey encodes the key as PKCS#8 under the header format selects.
func (c *rsaKeyCodec) EncodePrivateKey(key *rsa.PrivateKey, format cryptoalg.PEMFormat) (string, error) {
	const op = "encode RSA private key"

	if key == nil {
		return "", cryptoalg.NewValidationError(op, errors.New("private key cannot be nil"))
	}
	if format == cryptoalg.PEMFormatUnknown {
		return "", cryptoalg.NewConfigurationError(op, cryptoalg.ErrUnknownPEMFormat)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", cryptoalg.NewLibraryError(op, fmt.Errorf("failed to marshal private key: %w", err))
	}
	return armor(format.PrivateHeader(), der), nil
}

// LoadPublicKey parses a public key from PEM text. The body may be PKIX or PKCS#1 whatever the header says.
func (c *rsaKeyCodec) LoadPublicKey(pemText string) (*rsa.PublicKey, error) {
	const op = "load RSA public key"

	der, err := dearmor(pemText)
	if err != nil {
		c.logger.Error("Public key loading failed: ", err)
		return nil, cryptoalg.NewValidationError(op, err)
	}

	var key *rsa.PublicKey
	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		rsaKey, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: public key is not of type RSA", cryptoalg.ErrMalformedKeyBody))
		}
		key = rsaKey
	} else if key, err = x509.ParsePKCS1PublicKey(der); err != nil {
		return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrMalformedKeyBody, err))
	}

	if key.N == nil || key.N.Sign() == 0 || key.E == 0 {
		return nil, cryptoalg.NewValidationError(op, cryptoalg.ErrInvalidKeyParameters)
	}

	c.logger.Debug("Public key loaded. Modulus size: ", key.N.BitLen(), " bits")
	return key, nil
}

// LoadPrivateKey parses a private key from PEM text. The body may be PKCS#8 or PKCS#1 whatever the header says.
func (c *rsaKeyCodec) LoadPrivateKey(pemText string) (*rsa.PrivateKey, error) {
	const op = "load RSA private key"

	der, err := dearmor(pemText)
	if err != nil {
		c.logger.Error("Private key loading failed: ", err)
		return nil, cryptoalg.NewValidationError(op, err)
	}

	var key *rsa.PrivateKey
	if parsed, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: private key is not of type RSA", cryptoalg.ErrMalformedKeyBody))
		}
		key = rsaKey
	} else if key, err = x509.ParsePKCS1PrivateKey(der); err != nil {
		return nil, cryptoalg.NewValidationError(op, fmt.Errorf("%w: %v", cryptoalg.ErrMalformedKeyBody, err))
	}

	if key.N == nil || key.N.Sign() == 0 || key.E == 0 || key.D == nil || key.D.Sign() == 0 {
		return nil, cryptoalg.NewValidationError(op, cryptoalg.ErrInvalidKeyParameters)
	}

	c.logger.Debug("Private key loaded. Modulus size: ", key.N.BitLen(), " bits")
	return key, nil
}

// armor wraps der as a single-line base64 body between BEGIN and END lines.
func armor(header string, der []byte) string {
	var b strings.Builder
	b.WriteString(pemBeginMarker + header + pemDashes + "\n")
	b.WriteString(base64.StdEncoding.EncodeToString(der))
	b.WriteString("\n" + pemEndMarker + header + pemDashes)
	return b.String()
}

// dearmor locates the BEGIN and END markers, keeps only base64 characters of the body
// and decodes it. Missing '=' padding is restored.
func dearmor(text string) ([]byte, error) {
	begin := strings.Index(text, pemBeginMarker)
	if begin < 0 {
		return nil, cryptoalg.ErrMissingBeginMarker
	}
	headerEnd := strings.Index(text[begin+len(pemBeginMarker):], pemDashes)
	if headerEnd < 0 {
		return nil, cryptoalg.ErrInvalidBeginMarker
	}
	bodyStart := begin + len(pemBeginMarker) + headerEnd + len(pemDashes)

	end := strings.Index(text[bodyStart:], pemEndMarker)
	if end < 0 {
		return nil, cryptoalg.ErrMissingEndMarker
	}
	bodyEnd := bodyStart + end
	if !strings.Contains(text[bodyEnd+len(pemEndMarker):], pemDashes) {
		return nil, cryptoalg.ErrInvalidEndMarker
	}

	body := strings.Map(func(r rune) rune {
		if isBase64Char(r) {
			return r
		}
		return -1
	}, text[bodyStart:bodyEnd])
	if rem := len(body) % 4; rem != 0 {
		body += strings.Repeat("=", 4-rem)
	}

	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrMalformedKeyBody, err)
	}
	if len(der) == 0 {
		return nil, cryptoalg.ErrEmptyDecodedBody
	}
	return der, nil
}

func isBase64Char(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		r == '+' || r == '/' || r == '='
}

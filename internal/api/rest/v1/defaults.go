package v1

import (
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
)

// ValidateDefaults rejects defaults the REST surface cannot serve. A request without an
// encoding falls back to the configured one, which must therefore be JSON safe.
func ValidateDefaults(defaults *config.CryptoDefaults) error {
	switch cryptoalg.ParseEncodingFormat(defaults.AESEncoding) {
	case cryptoalg.EncodingBase64, cryptoalg.EncodingHex:
		return nil
	default:
		return fmt.Errorf("default AES encoding %q cannot be carried in JSON, use BASE64 or HEX", defaults.AESEncoding)
	}
}

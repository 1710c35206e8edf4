package validators

import (
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size based on the sibling Algorithm field (AES or RSA).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := int(fl.Field().Int())

	switch algorithm {
	case "AES":
		return cryptoalg.KeyBitsFromInt(keySize) != cryptoalg.KeyBitsUnknown
	case "RSA":
		return cryptoalg.RSAKeySizeFromInt(keySize) != cryptoalg.RSAKeySizeUnknown
	default:
		return false
	}
}

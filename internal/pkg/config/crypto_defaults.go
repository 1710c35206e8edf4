package config

import (
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/validators"
)

// CryptoDefaults holds the option names used when a request leaves them out
type CryptoDefaults struct {
	AESMode       string `mapstructure:"aes_mode" validate:"required,cipher_mode"`
	AESPadding    string `mapstructure:"aes_padding" validate:"required,aes_padding"`
	AESKeyBits    int    `mapstructure:"aes_key_bits" validate:"required,aes_key_bits"`
	AESEncoding   string `mapstructure:"aes_encoding" validate:"required,encoding_format"`
	RSAKeySize    int    `mapstructure:"rsa_key_size" validate:"required,rsa_key_size"`
	RSAPEMFormat  string `mapstructure:"rsa_pem_format" validate:"required,pem_format"`
	RSAPadding    string `mapstructure:"rsa_padding" validate:"required,rsa_padding"`
	KeyOutputPath string `mapstructure:"key_output_path"`
}

// Validate checks that all option names are known
func (s *CryptoDefaults) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CryptoDefaults: %w", err)
	}
	return nil
}

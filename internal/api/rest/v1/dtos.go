package v1

import (
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/validators"
)

// Envelope wraps every response body
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// AESKeyRequest represents a request to generate an AES key
type AESKeyRequest struct {
	KeyBits int    `json:"key_bits" validate:"omitempty,aes_key_bits"`
	Mode    string `json:"mode" validate:"omitempty,cipher_mode"`
}

// Validate checks the request fields
func (r *AESKeyRequest) Validate() error {
	return validateStruct(r)
}

// AESKeyResponse carries a hex encoded AES key
type AESKeyResponse struct {
	Key string `json:"key"`
}

// AESRequest represents an AES encryption or decryption request.
// Empty option fields fall back to the server defaults. Ciphertext crosses JSON as BASE64 or HEX;
// NONE is rejected since raw bytes do not survive a JSON string.
type AESRequest struct {
	Data        string `json:"data"`
	Mode        string `json:"mode" validate:"omitempty,cipher_mode"`
	Padding     string `json:"padding" validate:"omitempty,aes_padding"`
	KeyBits     int    `json:"key_bits" validate:"omitempty,aes_key_bits"`
	Encoding    string `json:"encoding" validate:"omitempty,text_encoding_format"`
	Key         string `json:"key" validate:"required"`
	KeyEncoding string `json:"key_encoding" validate:"omitempty,value_encoding"`
	IV          string `json:"iv"`
	IVEncoding  string `json:"iv_encoding" validate:"omitempty,value_encoding"`
}

// Validate checks the request fields
func (r *AESRequest) Validate() error {
	return validateStruct(r)
}

// AESEncryptResponse carries the encoded ciphertext and the hex encoded IV used
type AESEncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
}

// AESDecryptResponse carries the recovered plaintext
type AESDecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// KeyRequest represents a request to generate a key for either algorithm.
// KeySize is in bits: 128, 192 or 256 for AES and 512 to 4096 for RSA.
type KeyRequest struct {
	Algorithm string `json:"algorithm" validate:"required,oneof=AES RSA"`
	KeySize   int    `json:"key_size" validate:"omitempty,keysize"`
	Mode      string `json:"mode" validate:"omitempty,cipher_mode"`
	Format    string `json:"format" validate:"omitempty,pem_format"`
}

// Validate checks the request fields
func (r *KeyRequest) Validate() error {
	return validateStruct(r)
}

// KeyResponse carries a hex encoded AES key or a PEM encoded RSA key pair
type KeyResponse struct {
	Algorithm  string `json:"algorithm"`
	Key        string `json:"key,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
}

// RSAKeyPairRequest represents a request to generate an RSA key pair
type RSAKeyPairRequest struct {
	KeySize int    `json:"key_size" validate:"omitempty,rsa_key_size"`
	Format  string `json:"format" validate:"omitempty,pem_format"`
}

// Validate checks the request fields
func (r *RSAKeyPairRequest) Validate() error {
	return validateStruct(r)
}

// RSAKeyPairResponse carries PEM encoded keys
type RSAKeyPairResponse struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// RSARequest represents an RSA encryption or decryption request
type RSARequest struct {
	Data    string `json:"data" validate:"required"`
	Key     string `json:"key" validate:"required"`
	Format  string `json:"format" validate:"omitempty,pem_format"`
	Padding string `json:"padding" validate:"omitempty,rsa_padding"`
}

// Validate checks the request fields
func (r *RSARequest) Validate() error {
	return validateStruct(r)
}

// RSAResponse carries base64 ciphertext or recovered plaintext
type RSAResponse struct {
	Result string `json:"result"`
}

func validateStruct(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

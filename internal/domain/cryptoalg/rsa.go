package cryptoalg

import "crypto/rsa"

// RSAKeyCodec generates RSA key pairs and converts them to and from PEM text.
type RSAKeyCodec interface {
	// GenerateKeyPair generates a key pair and returns the PEM encoded public and private keys
	// as independent results.
	GenerateKeyPair(keySize RSAKeySize, format PEMFormat) (publicKey Result, privateKey Result)

	// EncodePublicKey serializes the key as PEM text with a single-line body.
	EncodePublicKey(key *rsa.PublicKey, format PEMFormat) (string, error)

	// EncodePrivateKey serializes the key as PEM text with a single-line body.
	EncodePrivateKey(key *rsa.PrivateKey, format PEMFormat) (string, error)

	// LoadPublicKey parses loosely formatted PEM text into a public key.
	LoadPublicKey(pemText string) (*rsa.PublicKey, error)

	// LoadPrivateKey parses loosely formatted PEM text into a private key.
	LoadPrivateKey(pemText string) (*rsa.PrivateKey, error)
}

// RSAProcessor handles RSA encryption with a selectable padding scheme.
// NOTE: RSA only encrypts payloads smaller than the modulus minus the padding overhead.
type RSAProcessor interface {
	// Encrypt encrypts plaintext with the PEM encoded public key and returns base64 text.
	Encrypt(plaintext []byte, publicKeyPEM string, format PEMFormat, padding RSAPadding) ([]byte, error)

	// Decrypt decodes base64 ciphertext and decrypts it with the PEM encoded private key.
	Decrypt(ciphertext []byte, privateKeyPEM string, format PEMFormat, padding RSAPadding) ([]byte, error)
}

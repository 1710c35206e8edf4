package cryptoalg

// SymmetricOptions carries the per-call configuration of an AES operation.
type SymmetricOptions struct {
	Mode    CipherMode
	Padding PaddingScheme
	KeyBits KeyBits
	Key     []byte
	// IV is optional when encrypting; a fresh one is generated when empty.
	IV []byte
	// Encoding wraps the ciphertext on encrypt and unwraps it on decrypt.
	Encoding EncodingFormat
}

// AESProcessor handles AES symmetric encryption across the supported modes.
type AESProcessor interface {
	// GenerateKey generates a random key for the given strength.
	// XTS keys are twice as long since they hold two sub-keys.
	GenerateKey(keyBits KeyBits, mode CipherMode) ([]byte, error)

	// Encrypt validates the options, encrypts plaintext and applies the output encoding.
	// It returns the (encoded) ciphertext and the IV actually used, which is nil for ECB.
	Encrypt(plaintext []byte, opts SymmetricOptions) (ciphertext []byte, iv []byte, err error)

	// Decrypt unwraps the input encoding, validates the options and decrypts.
	// An empty IV is always rejected except for ECB.
	Decrypt(ciphertext []byte, opts SymmetricOptions) ([]byte, error)
}

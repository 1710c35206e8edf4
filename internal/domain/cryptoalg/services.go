package cryptoalg

// Encodings accepted for keys and IVs passed as strings.
const (
	ValueEncodingText = "TEXT"
	ValueEncodingHex  = "HEX"
)

// SymmetricRequest is the flat, string-typed form of an AES operation as received from a caller.
// Empty option fields fall back to the configured defaults.
type SymmetricRequest struct {
	Data        string
	Mode        string
	Padding     string
	KeyBits     int
	Encoding    string
	Key         string
	KeyEncoding string
	IV          string
	IVEncoding  string
}

// SymmetricResult extends Result with the IV used by an encryption, hex encoded.
type SymmetricResult struct {
	Result
	IV string
}

// AsymmetricRequest is the flat, string-typed form of an RSA operation.
type AsymmetricRequest struct {
	Data    string
	Key     string
	Format  string
	Padding string
}

// KeyPairResult holds the independent results of an RSA key pair generation.
type KeyPairResult struct {
	PublicKey  Result
	PrivateKey Result
}

// SymmetricService resolves flat requests into AES operations.
type SymmetricService interface {
	// GenerateKey returns a hex encoded random key.
	GenerateKey(keyBits int, mode string) Result
	Encrypt(req SymmetricRequest) SymmetricResult
	Decrypt(req SymmetricRequest) Result
}

// AsymmetricService resolves flat requests into RSA operations.
type AsymmetricService interface {
	GenerateKeyPair(keySize int, format string) KeyPairResult
	Encrypt(req AsymmetricRequest) Result
	Decrypt(req AsymmetricRequest) Result
}

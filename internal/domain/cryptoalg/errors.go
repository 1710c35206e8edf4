package cryptoalg

import (
	"errors"
	"fmt"
)

// Configuration errors: a tag could not be resolved from its name.
var (
	ErrUnknownMode       = errors.New("unknown cipher mode")
	ErrUnknownPadding    = errors.New("unknown padding scheme")
	ErrUnknownKeyBits    = errors.New("unknown key bits")
	ErrUnknownEncoding   = errors.New("unknown encoding format")
	ErrUnknownKeySize    = errors.New("unknown RSA key size")
	ErrUnknownPEMFormat  = errors.New("unknown PEM format")
	ErrUnknownRSAPadding = errors.New("unknown RSA padding scheme")
)

// Validation errors for symmetric key material and input.
var (
	ErrInvalidKey         = errors.New("invalid key")
	ErrInvalidIV          = errors.New("invalid IV")
	ErrPaddingNotAllowed  = errors.New("streaming and authenticated modes require NONE padding")
	ErrInvalidInputLength = errors.New("invalid input length")
	ErrInvalidPadding     = errors.New("invalid padding")
	ErrInvalidEncoding    = errors.New("invalid encoding")
)

// ErrAuthenticationFailed is returned when an AEAD tag does not verify.
// It signals tampered ciphertext or a wrong key/nonce rather than malformed input.
var ErrAuthenticationFailed = errors.New("message authentication failed")

// PEM and RSA validation errors.
var (
	ErrMissingBeginMarker    = errors.New("missing BEGIN marker")
	ErrInvalidBeginMarker    = errors.New("invalid BEGIN marker")
	ErrMissingEndMarker      = errors.New("missing END marker")
	ErrInvalidEndMarker      = errors.New("invalid END marker")
	ErrEmptyDecodedBody      = errors.New("PEM body decoded to no data")
	ErrMalformedKeyBody      = errors.New("malformed key body")
	ErrInvalidKeyParameters  = errors.New("invalid key parameters")
	ErrMessageTooLong        = errors.New("message too long for RSA modulus")
	ErrInvalidCiphertextSize = errors.New("ciphertext size must equal modulus size")
)

// ErrorKind classifies an error into the taxonomy callers branch on.
type ErrorKind int

// Error kinds.
const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindValidation
	KindAuthentication
	KindLibrary
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindLibrary:
		return "library"
	default:
		return "unknown"
	}
}

// OperationError ties an underlying error to the operation that failed and its kind.
type OperationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError wraps err as a configuration error of op.
func NewConfigurationError(op string, err error) error {
	return &OperationError{Kind: KindConfiguration, Op: op, Err: err}
}

// NewValidationError wraps err as a validation error of op.
func NewValidationError(op string, err error) error {
	return &OperationError{Kind: KindValidation, Op: op, Err: err}
}

// NewAuthenticationError wraps err as an authentication error of op.
func NewAuthenticationError(op string, err error) error {
	return &OperationError{Kind: KindAuthentication, Op: op, Err: err}
}

// NewLibraryError wraps err as a failure raised by an underlying primitive.
func NewLibraryError(op string, err error) error {
	return &OperationError{Kind: KindLibrary, Op: op, Err: err}
}

// KindOf returns the kind of the outermost OperationError in err's chain.
func KindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnknown
}

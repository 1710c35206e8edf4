package cryptography

import (
	"crypto/rand"
	"io"
)

type processorOptions struct {
	rand             io.Reader
	verifyRawDecrypt bool
}

// Option configures a processor.
type Option func(*processorOptions)

// WithRandom replaces crypto/rand as the source of keys, IVs, padding bytes and blinding factors.
func WithRandom(r io.Reader) Option {
	return func(o *processorOptions) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithRawDecryptVerification toggles the re-encryption check after an unpadded RSA decryption.
// Enabled by default.
func WithRawDecryptVerification(enabled bool) Option {
	return func(o *processorOptions) {
		o.verifyRawDecrypt = enabled
	}
}

func newProcessorOptions(opts []Option) processorOptions {
	o := processorOptions{
		rand:             rand.Reader,
		verifyRawDecrypt: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

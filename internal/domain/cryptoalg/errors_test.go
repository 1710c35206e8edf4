//go:build unit
// +build unit

package cryptoalg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"configuration", NewConfigurationError("Encrypt", ErrUnknownMode), KindConfiguration},
		{"validation", NewValidationError("Encrypt", ErrInvalidKey), KindValidation},
		{"authentication", NewAuthenticationError("Decrypt", ErrAuthenticationFailed), KindAuthentication},
		{"library", NewLibraryError("Encrypt", errors.New("boom")), KindLibrary},
		{"wrapped", fmt.Errorf("service: %w", NewValidationError("Decrypt", ErrInvalidIV)), KindValidation},
		{"plain", errors.New("plain"), KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	err := NewValidationError("LoadPublicKey", ErrMissingBeginMarker)

	assert.True(t, errors.Is(err, ErrMissingBeginMarker))
	assert.Equal(t, "LoadPublicKey: missing BEGIN marker", err.Error())

	var opErr *OperationError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, "LoadPublicKey", opErr.Op)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "authentication", KindAuthentication.String())
	assert.Equal(t, "library", KindLibrary.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

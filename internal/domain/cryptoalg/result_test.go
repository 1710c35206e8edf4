//go:build unit
// +build unit

package cryptoalg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResult(t *testing.T) {
	ok := NewResult([]byte("data"), nil)
	assert.True(t, ok.Success)
	assert.Equal(t, "data", ok.Text())
	assert.Empty(t, ok.Error)

	empty := NewResult(nil, nil)
	assert.True(t, empty.Success)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)

	failed := NewResult([]byte("partial"), errors.New("bad key"))
	assert.False(t, failed.Success)
	assert.Nil(t, failed.Data)
	assert.Equal(t, "bad key", failed.Error)
}

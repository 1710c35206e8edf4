//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValue(t *testing.T) {
	t.Run("text is taken verbatim", func(t *testing.T) {
		out, err := decodeValue("op", "abc", "", cryptoalg.ErrInvalidKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), out)
	})

	t.Run("hex is decoded", func(t *testing.T) {
		out, err := decodeValue("op", "0aff", "hex", cryptoalg.ErrInvalidKey)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x0a, 0xff}, out)
	})

	t.Run("empty hex means omitted", func(t *testing.T) {
		out, err := decodeValue("op", "", "HEX", cryptoalg.ErrInvalidIV)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("invalid hex is not treated as omitted", func(t *testing.T) {
		_, err := decodeValue("op", "0g", "HEX", cryptoalg.ErrInvalidIV)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidIV)
		assert.Equal(t, cryptoalg.KindValidation, cryptoalg.KindOf(err))
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := decodeValue("op", "00", "BASE64", cryptoalg.ErrInvalidKey)
		assert.ErrorIs(t, err, cryptoalg.ErrUnknownEncoding)
		assert.Equal(t, cryptoalg.KindConfiguration, cryptoalg.KindOf(err))
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "GCM", orDefault("", "GCM"))
	assert.Equal(t, "GCM", orDefault("   ", "GCM"))
	assert.Equal(t, "CBC", orDefault(" CBC ", "GCM"))
	assert.Equal(t, "PKCS1v15", orDefault("PKCS1v15", "NONE"))
}

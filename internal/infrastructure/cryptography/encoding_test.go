//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOutput(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}

	out, err := EncodeOutput(data, cryptoalg.EncodingHex)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef00", string(out))

	out, err = EncodeOutput(data, cryptoalg.EncodingBase64)
	require.NoError(t, err)
	assert.Equal(t, "3q2+7wA=", string(out))

	out, err = EncodeOutput(data, cryptoalg.EncodingNone)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = EncodeOutput(data, cryptoalg.EncodingUnknown)
	requireKind(t, err, cryptoalg.KindConfiguration, cryptoalg.ErrUnknownEncoding)
}

func TestDecodeInput(t *testing.T) {
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}

	t.Run("hex is case-insensitive", func(t *testing.T) {
		for _, in := range []string{"deadbeef00", "DEADBEEF00", "DeAdBeEf00"} {
			out, err := DecodeInput([]byte(in), cryptoalg.EncodingHex)
			require.NoError(t, err)
			assert.Equal(t, want, out)
		}
	})

	t.Run("base64", func(t *testing.T) {
		out, err := DecodeInput([]byte("3q2+7wA="), cryptoalg.EncodingBase64)
		require.NoError(t, err)
		assert.Equal(t, want, out)
	})

	t.Run("empty round-trips to empty", func(t *testing.T) {
		for _, enc := range []cryptoalg.EncodingFormat{cryptoalg.EncodingNone, cryptoalg.EncodingBase64, cryptoalg.EncodingHex} {
			encoded, err := EncodeOutput(nil, enc)
			require.NoError(t, err)
			assert.Empty(t, encoded)

			decoded, err := DecodeInput(encoded, enc)
			require.NoError(t, err)
			assert.Empty(t, decoded)
		}
	})

	t.Run("malformed input fails", func(t *testing.T) {
		tests := []struct {
			in  string
			enc cryptoalg.EncodingFormat
		}{
			{"abc", cryptoalg.EncodingHex},
			{"zz", cryptoalg.EncodingHex},
			{"3q2+7wA", cryptoalg.EncodingBase64},
			{"3q2*7wA=", cryptoalg.EncodingBase64},
		}
		for _, tt := range tests {
			_, err := DecodeInput([]byte(tt.in), tt.enc)
			requireKind(t, err, cryptoalg.KindValidation, cryptoalg.ErrInvalidEncoding)
		}
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := DecodeInput([]byte("00"), cryptoalg.EncodingUnknown)
		requireKind(t, err, cryptoalg.KindConfiguration, cryptoalg.ErrUnknownEncoding)
	})
}

func TestHexToBytes(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0xAB}, HexToBytes("01ab"))
	assert.Equal(t, []byte{0x01, 0xAB}, HexToBytes("01AB"))
	assert.Empty(t, HexToBytes("abc"))
	assert.Empty(t, HexToBytes("0g"))
	assert.Empty(t, HexToBytes(""))
	assert.NotNil(t, HexToBytes("xyz"))
}

//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	random := testutil.NewDeterministicReader("padding")

	t.Run("NONE requires whole blocks", func(t *testing.T) {
		out, err := pad(make([]byte, 32), cryptoalg.PaddingNone, random)
		require.NoError(t, err)
		assert.Len(t, out, 32)

		_, err = pad(make([]byte, 5), cryptoalg.PaddingNone, random)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidInputLength)
	})

	t.Run("ZEROS only pads partial blocks", func(t *testing.T) {
		out, err := pad([]byte("abc"), cryptoalg.PaddingZeros, random)
		require.NoError(t, err)
		assert.Equal(t, append([]byte("abc"), make([]byte, 13)...), out)

		aligned := bytes.Repeat([]byte{1}, 16)
		out, err = pad(aligned, cryptoalg.PaddingZeros, random)
		require.NoError(t, err)
		assert.Equal(t, aligned, out)
	})

	t.Run("PKCS7 always pads", func(t *testing.T) {
		out, err := pad([]byte("abc"), cryptoalg.PaddingPKCS7, random)
		require.NoError(t, err)
		assert.Equal(t, append([]byte("abc"), bytes.Repeat([]byte{13}, 13)...), out)

		out, err = pad(make([]byte, 16), cryptoalg.PaddingDefault, random)
		require.NoError(t, err)
		assert.Len(t, out, 32)
		assert.Equal(t, bytes.Repeat([]byte{16}, 16), out[16:])
	})

	t.Run("ONE_AND_ZEROS marks the boundary", func(t *testing.T) {
		out, err := pad([]byte("abc"), cryptoalg.PaddingOneAndZeros, random)
		require.NoError(t, err)
		want := append([]byte("abc"), 0x80)
		want = append(want, make([]byte, 12)...)
		assert.Equal(t, want, out)
	})

	t.Run("W3C stores the length in the last byte", func(t *testing.T) {
		out, err := pad([]byte("abcde"), cryptoalg.PaddingW3C, random)
		require.NoError(t, err)
		assert.Len(t, out, 16)
		assert.Equal(t, byte(11), out[15])
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := make([]byte, 3, 64)
		_, err := pad(in, cryptoalg.PaddingPKCS7, random)
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0}, in[:3:3])
		assert.Equal(t, byte(0), in[:4][3])
	})
}

func TestUnpadRoundTrip(t *testing.T) {
	random := testutil.NewDeterministicReader("roundtrip")
	schemes := []cryptoalg.PaddingScheme{
		cryptoalg.PaddingPKCS7,
		cryptoalg.PaddingDefault,
		cryptoalg.PaddingOneAndZeros,
		cryptoalg.PaddingW3C,
		cryptoalg.PaddingZeros,
	}

	for _, scheme := range schemes {
		for _, size := range []int{0, 1, 15, 16, 17, 31, 32} {
			data := bytes.Repeat([]byte{0xA5}, size)
			padded, err := pad(data, scheme, random)
			require.NoError(t, err)
			assert.Zero(t, len(padded)%16)

			out, err := unpad(padded, scheme)
			require.NoError(t, err, "%s/%d", scheme, size)
			assert.Equal(t, data, out, "%s/%d", scheme, size)
		}
	}
}

func TestUnpad_ZerosIsLossy(t *testing.T) {
	data := []byte{'a', 'b', 0, 0}
	padded, err := pad(data, cryptoalg.PaddingZeros, nil)
	require.NoError(t, err)

	out, err := unpad(padded, cryptoalg.PaddingZeros)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), out)
}

func TestUnpad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		scheme cryptoalg.PaddingScheme
	}{
		{"pkcs7 empty", nil, cryptoalg.PaddingPKCS7},
		{"pkcs7 zero length byte", make([]byte, 16), cryptoalg.PaddingPKCS7},
		{"pkcs7 length over block", append(make([]byte, 15), 17), cryptoalg.PaddingPKCS7},
		{"pkcs7 inconsistent", append(make([]byte, 14), 3, 2), cryptoalg.PaddingPKCS7},
		{"one and zeros without marker", make([]byte, 16), cryptoalg.PaddingOneAndZeros},
		{"one and zeros marker too far", append([]byte{0x80}, make([]byte, 16)...), cryptoalg.PaddingOneAndZeros},
		{"w3c zero length byte", make([]byte, 16), cryptoalg.PaddingW3C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unpad(tt.data, tt.scheme)
			assert.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
		})
	}
}

func TestUnpad_W3CIgnoresFillerBytes(t *testing.T) {
	data := append([]byte("hello"), 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11)
	out, err := unpad(data, cryptoalg.PaddingW3C)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

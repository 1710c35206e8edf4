//go:build unit
// +build unit

package cryptography

import (
	"crypto/aes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/xts"
)

func randomBytes(t *testing.T, seed string, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := io.ReadFull(testutil.NewDeterministicReader(seed), b)
	require.NoError(t, err)
	return b
}

func TestXTS_MatchesSectorCipherOnWholeBlocks(t *testing.T) {
	for _, keyLen := range []int{32, 64} {
		key := randomBytes(t, "xts-key", keyLen)
		reference, err := xts.NewCipher(aes.NewCipher, key)
		require.NoError(t, err)

		x, err := newXTS(key)
		require.NoError(t, err)

		const sector = uint64(0x0123456789)
		iv := make([]byte, 16)
		binary.LittleEndian.PutUint64(iv, sector)

		plaintext := randomBytes(t, "xts-plaintext", 512)
		want := make([]byte, len(plaintext))
		reference.Encrypt(want, plaintext, sector)

		got, err := x.Encrypt(plaintext, iv)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		back, err := x.Decrypt(got, iv)
		require.NoError(t, err)
		assert.Equal(t, plaintext, back)
	}
}

func TestXTS_CiphertextStealing(t *testing.T) {
	key := randomBytes(t, "cts-key", 32)
	iv := randomBytes(t, "cts-iv", 16)
	x, err := newXTS(key)
	require.NoError(t, err)

	for _, size := range []int{16, 17, 20, 31, 33, 47, 100} {
		plaintext := randomBytes(t, "cts-plaintext", size)

		ciphertext, err := x.Encrypt(plaintext, iv)
		require.NoError(t, err)
		assert.Len(t, ciphertext, size)

		back, err := x.Decrypt(ciphertext, iv)
		require.NoError(t, err)
		assert.Equal(t, plaintext, back, "size %d", size)
	}
}

func TestXTS_StealingKeepsLeadingBlocks(t *testing.T) {
	key := randomBytes(t, "prefix-key", 32)
	iv := randomBytes(t, "prefix-iv", 16)
	x, err := newXTS(key)
	require.NoError(t, err)

	plaintext := randomBytes(t, "prefix-plaintext", 40)
	whole, err := x.Encrypt(plaintext[:32], iv)
	require.NoError(t, err)
	stolen, err := x.Encrypt(plaintext, iv)
	require.NoError(t, err)

	assert.Equal(t, whole[:16], stolen[:16])
	assert.Equal(t, whole[16:24], stolen[32:40])
}

func TestXTS_RejectsShortInput(t *testing.T) {
	x, err := newXTS(make([]byte, 32))
	require.NoError(t, err)

	_, err = x.Encrypt(make([]byte, 15), make([]byte, 16))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidInputLength)

	_, err = x.Decrypt(nil, make([]byte, 16))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidInputLength)
}

func TestXTS_RejectsBadKeys(t *testing.T) {
	_, err := newXTS(make([]byte, 31))
	assert.Error(t, err)

	_, err = newXTS(make([]byte, 20))
	assert.Error(t, err)
}

func TestMul2(t *testing.T) {
	var tw [16]byte
	tw[0] = 1
	mul2(&tw)
	assert.Equal(t, byte(2), tw[0])

	tw = [16]byte{}
	tw[15] = 0x80
	mul2(&tw)
	assert.Equal(t, byte(0x87), tw[0])
	assert.Equal(t, byte(0), tw[15])

	tw = [16]byte{}
	tw[7] = 0x80
	mul2(&tw)
	assert.Equal(t, byte(1), tw[8])
	assert.Equal(t, byte(0), tw[7])
}

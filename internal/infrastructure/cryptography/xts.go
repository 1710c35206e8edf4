package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
)

// xtsCipher implements XTS-AES (IEEE 1619) over a full 16-byte tweak with ciphertext stealing,
// so any input of at least one block is accepted.
type xtsCipher struct {
	data  cipher.Block
	tweak cipher.Block
}

// newXTS splits key into its data and tweak halves.
func newXTS(key []byte) (*xtsCipher, error) {
	if len(key)%2 != 0 {
		return nil, fmt.Errorf("%w: XTS key length must be even", cryptoalg.ErrInvalidKey)
	}
	half := len(key) / 2
	data, err := aes.NewCipher(key[:half])
	if err != nil {
		return nil, err
	}
	tweak, err := aes.NewCipher(key[half:])
	if err != nil {
		return nil, err
	}
	return &xtsCipher{data: data, tweak: tweak}, nil
}

func (x *xtsCipher) Encrypt(src, iv []byte) ([]byte, error) {
	if len(src) < blockSize {
		return nil, fmt.Errorf("%w: XTS requires at least %d bytes", cryptoalg.ErrInvalidInputLength, blockSize)
	}
	dst := make([]byte, len(src))
	t := x.initialTweak(iv)

	full := len(src) / blockSize
	rem := len(src) % blockSize
	if rem != 0 {
		full--
	}

	for i := 0; i < full; i++ {
		off := i * blockSize
		x.cryptBlock(x.data.Encrypt, dst[off:off+blockSize], src[off:off+blockSize], &t)
		mul2(&t)
	}
	if rem == 0 {
		return dst, nil
	}

	// Ciphertext stealing: the last full block borrows the tail of the partial block's output.
	off := full * blockSize
	var cc [blockSize]byte
	x.cryptBlock(x.data.Encrypt, cc[:], src[off:off+blockSize], &t)
	mul2(&t)

	var pp [blockSize]byte
	copy(pp[:], src[off+blockSize:])
	copy(pp[rem:], cc[rem:])
	copy(dst[off+blockSize:], cc[:rem])
	x.cryptBlock(x.data.Encrypt, dst[off:off+blockSize], pp[:], &t)

	return dst, nil
}

func (x *xtsCipher) Decrypt(src, iv []byte) ([]byte, error) {
	if len(src) < blockSize {
		return nil, fmt.Errorf("%w: XTS requires at least %d bytes", cryptoalg.ErrInvalidInputLength, blockSize)
	}
	dst := make([]byte, len(src))
	t := x.initialTweak(iv)

	full := len(src) / blockSize
	rem := len(src) % blockSize
	if rem != 0 {
		full--
	}

	for i := 0; i < full; i++ {
		off := i * blockSize
		x.cryptBlock(x.data.Decrypt, dst[off:off+blockSize], src[off:off+blockSize], &t)
		mul2(&t)
	}
	if rem == 0 {
		return dst, nil
	}

	off := full * blockSize
	prev := t
	mul2(&t)

	var pp [blockSize]byte
	x.cryptBlock(x.data.Decrypt, pp[:], src[off:off+blockSize], &t)

	var cc [blockSize]byte
	copy(cc[:], src[off+blockSize:])
	copy(cc[rem:], pp[rem:])
	copy(dst[off+blockSize:], pp[:rem])
	x.cryptBlock(x.data.Decrypt, dst[off:off+blockSize], cc[:], &prev)

	return dst, nil
}

func (x *xtsCipher) initialTweak(iv []byte) [blockSize]byte {
	var t [blockSize]byte
	x.tweak.Encrypt(t[:], iv)
	return t
}

// cryptBlock computes dst = fn(src ^ t) ^ t.
func (x *xtsCipher) cryptBlock(fn func(dst, src []byte), dst, src []byte, t *[blockSize]byte) {
	var buf [blockSize]byte
	subtle.XORBytes(buf[:], src, t[:])
	fn(buf[:], buf[:])
	subtle.XORBytes(dst, buf[:], t[:])
}

// mul2 multiplies the tweak by x in GF(2^128), little-endian, reducing by x^128 + x^7 + x^2 + x + 1.
func mul2(t *[blockSize]byte) {
	carry := t[blockSize-1] >> 7
	for j := blockSize - 1; j > 0; j-- {
		t[j] = t[j]<<1 | t[j-1]>>7
	}
	t[0] <<= 1
	if carry != 0 {
		t[0] ^= 0x87
	}
}

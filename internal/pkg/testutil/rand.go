package testutil

import (
	"crypto/sha256"
	"encoding/binary"
)

// DeterministicReader is an io.Reader producing a reproducible byte stream derived from a seed.
// It stands in for crypto/rand in tests that assert on generated IVs or keys.
type DeterministicReader struct {
	seed    []byte
	counter uint64
	buf     []byte
}

// NewDeterministicReader returns a reader whose output depends only on seed.
func NewDeterministicReader(seed string) *DeterministicReader {
	return &DeterministicReader{seed: []byte(seed)}
}

// Read fills p with the next bytes of the stream. It never fails.
func (r *DeterministicReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			r.refill()
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}

func (r *DeterministicReader) refill() {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], r.counter)
	r.counter++

	h := sha256.New()
	h.Write(r.seed)
	h.Write(ctr[:])
	r.buf = h.Sum(nil)
}

// FailingReader is an io.Reader that always returns Err.
type FailingReader struct {
	Err error
}

// Read implements io.Reader.
func (r FailingReader) Read([]byte) (int, error) {
	return 0, r.Err
}

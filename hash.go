package kcrypto

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the SHA-256 block length in bytes.
	BlockSize = 64

	// lengthOffset is where the 64-bit message length starts in the final
	// block.
	lengthOffset = BlockSize - 8
)

// ErrDigestLength is returned by ParseDigest for input that does not
// decode to exactly Size bytes.
var ErrDigestLength = errors.New("kcrypto: digest must be 32 bytes")

// iv is the initial hash state: the first 32 bits of the fractional parts
// of the square roots of the first 8 primes.
var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Digest is a SHA-256 output.
type Digest [Size]byte

// Hash computes the SHA-256 digest of data.
//
// The whole message must be in memory; there is no streaming form. Hash
// does not allocate and is safe for concurrent use.
func Hash(data []byte) Digest {
	h := iv
	bitLen := uint64(len(data)) << 3

	for len(data) >= BlockSize {
		compress(&h, data[:BlockSize])
		data = data[BlockSize:]
	}

	// Padding: 0x80, zeros, then the bit length in the last 8 bytes. When
	// the remainder leaves no room for the length it spills into a second
	// block.
	var last [BlockSize]byte
	rem := copy(last[:], data)
	last[rem] = 0x80
	if rem >= lengthOffset {
		compress(&h, last[:])
		last = [BlockSize]byte{}
	}
	binary.BigEndian.PutUint64(last[lengthOffset:], bitLen)
	compress(&h, last[:])

	var d Digest
	for i, v := range h {
		binary.BigEndian.PutUint32(d[i*4:], v)
	}
	return d
}

// Verify reports whether data hashes to want. The comparison runs in
// constant time.
func Verify(data []byte, want Digest) bool {
	return Hash(data).Equal(want)
}

// ParseDigest decodes a hex-encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest

	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("kcrypto: invalid digest hex: %w", err)
	}
	if len(raw) != Size {
		return d, fmt.Errorf("%w, got %d", ErrDigestLength, len(raw))
	}

	copy(d[:], raw)
	return d, nil
}

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal compares two digests in constant time.
func (d Digest) Equal(other Digest) bool {
	var diff byte
	for i := 0; i < Size; i++ {
		diff |= d[i] ^ other[i]
	}
	return diff == 0
}

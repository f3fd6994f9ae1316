package kcrypto

// SHA-256 round constants: first 32 bits of the fractional parts of the
// cube roots of the first 64 primes.
var _K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// rotr32 performs a right rotation of x by n bits, 0 < n < 32.
func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// ch selects bits of y where x is set and bits of z elsewhere.
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj is the bitwise majority of its three inputs.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func bigSigma0(x uint32) uint32 {
	return rotr32(x, 2) ^ rotr32(x, 13) ^ rotr32(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr32(x, 6) ^ rotr32(x, 11) ^ rotr32(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return rotr32(x, 7) ^ rotr32(x, 18) ^ (x >> 3)
}

func smallSigma1(x uint32) uint32 {
	return rotr32(x, 17) ^ rotr32(x, 19) ^ (x >> 10)
}

// schedule expands one 64-byte block into the 64-word message schedule.
// Words 0-15 are the block read big-endian.
func schedule(w *[64]uint32, p []byte) {
	_ = p[BlockSize-1] // bounds check hint
	for t := 0; t < 16; t++ {
		j := t * 4
		w[t] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
	}
	for t := 16; t < 64; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}
}

// compress folds one 64-byte block into the hash state. All additions wrap
// modulo 2^32.
func compress(h *[8]uint32, p []byte) {
	var w [64]uint32
	schedule(&w, p)

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for t := 0; t < 64; t++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + _K[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

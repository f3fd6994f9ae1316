package kcrypto

import (
	"github.com/opd-ai/go-kcrypto/internal/hwrng"
	"github.com/opd-ai/go-kcrypto/internal/xorshift"
)

// Generator produces 64-bit words and byte fills.
//
// Each draw first probes the hardware source; if it is supported and the
// instruction delivers a value, that value is returned. Otherwise the draw
// is served by advancing the xorshift128 state. A failed hardware draw is
// not retried and is never reported.
//
// The zero value is ready to use and behaves like NewDefault. A Generator
// is not safe for concurrent use. Callers sharing one across goroutines
// must serialize access themselves.
type Generator struct {
	hw    Hardware
	state xorshift.State
}

// New creates a Generator from config.
func New(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		hw:    config.hardware(),
		state: xorshift.DefaultSeed,
	}
	if config.Seed != nil {
		g.state = xorshift.FromSeed(config.Seed)
	}

	return g, nil
}

// NewDefault returns a Generator that probes RDRAND per draw and falls back
// to the fixed default seed.
func NewDefault() *Generator {
	return &Generator{
		hw:    RDRAND(),
		state: xorshift.DefaultSeed,
	}
}

// Uint64 returns the next 64-bit value.
func (g *Generator) Uint64() uint64 {
	hw := g.hw
	if hw == nil {
		hw = hwrng.CPUID{}
	}
	if hw.Supported() {
		if v, ok := hw.Draw(); ok {
			return v
		}
	}

	// Only the zero value reaches here with a zero state; FromSeed never
	// returns one.
	if g.state.IsZero() {
		g.state = xorshift.DefaultSeed
	}
	return g.state.Next()
}

// Fill overwrites buf with random bytes. Each word is written least
// significant byte first; the last word is truncated to fit.
func (g *Generator) Fill(buf []byte) {
	for i := 0; i < len(buf); {
		r := g.Uint64()
		for j := 0; j < 8 && i < len(buf); j++ {
			buf[i] = byte(r >> (8 * j))
			i++
		}
	}
}

// Read implements io.Reader. It fills p and never fails.
func (g *Generator) Read(p []byte) (int, error) {
	g.Fill(p)
	return len(p), nil
}

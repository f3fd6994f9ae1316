// Package kcrypto provides the two primitives early boot and kernel-side
// code needs: whole-buffer SHA-256 and a 64-bit entropy source.
//
// Hash has no state and never allocates. The entropy source prefers the
// processor random instruction (RDRAND) and falls back to a deterministic
// xorshift128 sequence when the instruction is missing or has no value
// ready. The fallback is NOT cryptographically secure; mix in external
// entropy before using its output for keys.
//
// Example usage:
//
//	if err := kcrypto.SelfTest(); err != nil {
//	    log.Fatal(err)
//	}
//	sum := kcrypto.Hash(blob)
//
//	gen := kcrypto.NewDefault()
//	id := gen.Uint64()
//
//	nonce := make([]byte, 12)
//	gen.Fill(nonce)
package kcrypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opd-ai/go-kcrypto/internal/hwrng"
)

// Hardware is a processor random-number source.
//
// Supported is consulted before every draw. Draw issues the instruction
// once and reports whether it produced a value; it must not retry.
type Hardware interface {
	Supported() bool
	Draw() (uint64, bool)
}

// RDRAND returns the hardware source that executes CPUID on every probe.
func RDRAND() Hardware {
	return hwrng.CPUID{}
}

// StartupRDRAND returns the hardware source whose probe reads the CPU
// feature flags detected once at process start.
func StartupRDRAND() Hardware {
	return hwrng.Startup{}
}

// NoHardware returns a source that is never available, which pins a
// Generator to its deterministic fallback sequence.
func NoHardware() Hardware {
	return hwrng.None{}
}

// Flags selects the hardware behaviour of a Generator.
type Flags uint32

const (
	// FlagDefault probes for RDRAND with CPUID on every draw.
	FlagDefault Flags = 0

	// FlagNoHardware disables the hardware path. Output is the fallback
	// sequence only and is reproducible from the seed.
	FlagNoHardware Flags = 1 << 0

	// FlagStartupProbe trusts the feature flags detected at process start
	// instead of executing CPUID per draw.
	FlagStartupProbe Flags = 1 << 1

	allFlags = FlagNoHardware | FlagStartupProbe
)

// String returns the flag names joined by "|".
func (f Flags) String() string {
	if f == FlagDefault {
		return "FlagDefault"
	}

	var names []string
	if f&FlagNoHardware != 0 {
		names = append(names, "FlagNoHardware")
	}
	if f&FlagStartupProbe != 0 {
		names = append(names, "FlagStartupProbe")
	}
	if rest := f &^ allFlags; rest != 0 {
		names = append(names, fmt.Sprintf("Flags(%#x)", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// Config specifies the configuration for a Generator.
type Config struct {
	// Flags selects how hardware randomness is probed.
	Flags Flags

	// Hardware overrides the source chosen by Flags. Must be nil unless
	// Flags is FlagDefault.
	Hardware Hardware

	// Seed derives the fallback state. Nil keeps the fixed default seed;
	// any other value, including an empty slice, is hashed into a state.
	Seed []byte
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if rest := c.Flags &^ allFlags; rest != 0 {
		return fmt.Errorf("kcrypto: unknown flags: %#x", uint32(rest))
	}

	if c.Flags&FlagNoHardware != 0 && c.Flags&FlagStartupProbe != 0 {
		return errors.New("kcrypto: FlagNoHardware and FlagStartupProbe are mutually exclusive")
	}

	if c.Hardware != nil && c.Flags != FlagDefault {
		return fmt.Errorf("kcrypto: explicit Hardware cannot be combined with %v", c.Flags)
	}

	return nil
}

// hardware resolves the source a Generator built from c will use.
func (c *Config) hardware() Hardware {
	switch {
	case c.Hardware != nil:
		return c.Hardware
	case c.Flags&FlagNoHardware != 0:
		return hwrng.None{}
	case c.Flags&FlagStartupProbe != 0:
		return hwrng.Startup{}
	default:
		return hwrng.CPUID{}
	}
}

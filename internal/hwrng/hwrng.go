// Package hwrng exposes the processor random-number instruction (RDRAND on
// amd64) and the feature probes that gate it.
//
// Every type here has the same two methods: Supported reports whether the
// instruction may be issued, Draw issues it exactly once. Draw never
// retries; a false result means the caller should use its own fallback for
// that draw.
package hwrng

import "golang.org/x/sys/cpu"

// cpuidRDRAND is the RDRAND feature bit in ECX of CPUID leaf 1.
const cpuidRDRAND = 1 << 30

// CPUID queries the processor on every Supported call, so a capability
// change after start (for example under a hypervisor) is observed on the
// next draw.
type CPUID struct{}

// Supported executes CPUID leaf 1 and tests the RDRAND bit.
func (CPUID) Supported() bool {
	return probeRDRAND()
}

// Draw issues one RDRAND. The instruction faults on processors without
// it, so Supported must have returned true first.
func (CPUID) Draw() (uint64, bool) {
	return rdrand64()
}

// Startup uses the feature snapshot taken by golang.org/x/sys/cpu when the
// process started instead of executing CPUID per call.
type Startup struct{}

// Supported reports the RDRAND flag detected at process start.
func (Startup) Supported() bool {
	return cpu.X86.HasRDRAND
}

// Draw issues one RDRAND.
func (Startup) Draw() (uint64, bool) {
	return rdrand64()
}

// None never has hardware randomness.
type None struct{}

// Supported always returns false.
func (None) Supported() bool { return false }

// Draw always fails.
func (None) Draw() (uint64, bool) { return 0, false }

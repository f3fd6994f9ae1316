package hwrng

// cpuid executes the CPUID instruction.
// Implemented in rdrand_amd64.s.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

// rdrand64 executes RDRAND once. ok is the carry flag; false means the
// instruction had no value ready.
func rdrand64() (val uint64, ok bool)

func probeRDRAND() bool {
	_, _, ecx, _ := cpuid(1, 0)
	return ecx&cpuidRDRAND != 0
}

//go:build !amd64

package hwrng

// No RDRAND outside amd64.

func rdrand64() (uint64, bool) {
	return 0, false
}

func probeRDRAND() bool {
	return false
}

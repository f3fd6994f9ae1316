package kcrypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a single SHA-256 known-answer case.
type TestVector struct {
	Name     string `json:"name"`
	Input    string `json:"input"`
	InputHex string `json:"input_hex,omitempty"` // Alternative hex-encoded input
	Repeat   int    `json:"repeat,omitempty"`    // Input is repeated this many times when > 1
	Expected string `json:"expected"`            // Hex-encoded expected digest
}

// TestVectorSuite contains test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetInput returns the decoded input bytes for a test vector.
// If InputHex is set, it decodes from hex, otherwise uses Input as UTF-8.
func (tv *TestVector) GetInput() ([]byte, error) {
	input := []byte(tv.Input)
	if tv.InputHex != "" {
		var err error
		input, err = hex.DecodeString(tv.InputHex)
		if err != nil {
			return nil, fmt.Errorf("invalid input hex: %w", err)
		}
	}
	if tv.Repeat > 1 {
		input = bytes.Repeat(input, tv.Repeat)
	}
	return input, nil
}

// GetExpected returns the decoded expected digest.
func (tv *TestVector) GetExpected() (Digest, error) {
	d, err := ParseDigest(tv.Expected)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid expected digest: %w", err)
	}
	return d, nil
}

// Check hashes the vector input and compares it with the expected digest.
func (tv *TestVector) Check() error {
	input, err := tv.GetInput()
	if err != nil {
		return err
	}
	want, err := tv.GetExpected()
	if err != nil {
		return err
	}
	if got := Hash(input); !got.Equal(want) {
		return fmt.Errorf("%s: got %s, want %s", tv.Name, got, want)
	}
	return nil
}

// Check runs every vector in the suite and returns the first mismatch.
func (s *TestVectorSuite) Check() error {
	for i := range s.Vectors {
		if err := s.Vectors[i].Check(); err != nil {
			return err
		}
	}
	return nil
}

// builtinVectors are the FIPS 180-2 examples plus the padding boundaries.
var builtinVectors = []TestVector{
	{Name: "empty", Expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{Name: "abc", Input: "abc", Expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{Name: "two_blocks", Input: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", Expected: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{Name: "a_x55", Input: "a", Repeat: 55, Expected: "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318"},
	{Name: "a_x64", Input: "a", Repeat: 64, Expected: "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb"},
}

// SelfTest runs the built-in known-answer vectors. Hosts call it once at
// start before trusting Hash for integrity checks.
func SelfTest() error {
	suite := TestVectorSuite{Vectors: builtinVectors}
	if err := suite.Check(); err != nil {
		return fmt.Errorf("kcrypto: self test: %w", err)
	}
	return nil
}

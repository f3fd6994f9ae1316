package kcrypto

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadTestVectors verifies test vector loading functionality.
func TestLoadTestVectors(t *testing.T) {
	suite, err := LoadTestVectors("testdata/sha256_vectors.json")
	if err != nil {
		t.Fatalf("LoadTestVectors() error = %v", err)
	}

	if suite.Version == "" {
		t.Error("suite.Version should not be empty")
	}

	if len(suite.Vectors) == 0 {
		t.Fatal("suite.Vectors should not be empty")
	}

	t.Logf("Loaded %d test vectors from version %s", len(suite.Vectors), suite.Version)
}

// TestLoadTestVectors_FileNotFound verifies error handling for missing files.
func TestLoadTestVectors_FileNotFound(t *testing.T) {
	_, err := LoadTestVectors("nonexistent.json")
	if err == nil {
		t.Error("LoadTestVectors() should return error for nonexistent file")
	}
}

// TestLoadTestVectors_InvalidJSON verifies error handling for invalid JSON.
func TestLoadTestVectors_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.json")

	if err := os.WriteFile(tmpFile, []byte("{invalid json}"), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	if _, err := LoadTestVectors(tmpFile); err == nil {
		t.Error("LoadTestVectors() should return error for invalid JSON")
	}
}

// TestTestVector_GetInput verifies input extraction from test vectors.
func TestTestVector_GetInput(t *testing.T) {
	tests := []struct {
		name    string
		tv      TestVector
		want    []byte
		wantErr bool
	}{
		{
			name: "string_input",
			tv:   TestVector{Input: "test"},
			want: []byte("test"),
		},
		{
			name: "hex_input",
			tv:   TestVector{InputHex: "deadbeef"},
			want: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			name: "repeated_input",
			tv:   TestVector{Input: "ab", Repeat: 3},
			want: []byte("ababab"),
		},
		{
			name:    "invalid_hex",
			tv:      TestVector{InputHex: "invalid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tv.GetInput()
			if (err != nil) != tt.wantErr {
				t.Errorf("GetInput() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !bytes.Equal(got, tt.want) {
				t.Errorf("GetInput() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTestVector_GetExpected verifies expected digest extraction.
func TestTestVector_GetExpected(t *testing.T) {
	tests := []struct {
		name    string
		tv      TestVector
		wantErr bool
	}{
		{
			name: "valid_digest",
			tv:   TestVector{Expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		},
		{
			name:    "invalid_hex",
			tv:      TestVector{Expected: "invalid"},
			wantErr: true,
		},
		{
			name:    "wrong_length",
			tv:      TestVector{Expected: "deadbeef"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tv.GetExpected()
			if (err != nil) != tt.wantErr {
				t.Errorf("GetExpected() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTestVector_CheckMismatch(t *testing.T) {
	tv := TestVector{
		Name:     "wrong",
		Input:    "abc",
		Expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	}
	if err := tv.Check(); err == nil {
		t.Error("Check() should fail for a wrong expected digest")
	}
}

// TestVectorFile runs every vector in testdata.
func TestVectorFile(t *testing.T) {
	suite, err := LoadTestVectors("testdata/sha256_vectors.json")
	if err != nil {
		t.Fatalf("Failed to load test vectors: %v", err)
	}

	for _, tv := range suite.Vectors {
		tv := tv
		t.Run(tv.Name, func(t *testing.T) {
			if testing.Short() && tv.Repeat > 10000 {
				t.Skip("skipping long vector in short mode")
			}
			if err := tv.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest() error = %v", err)
	}
}

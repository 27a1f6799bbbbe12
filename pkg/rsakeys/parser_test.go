package rsakeys

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexInteger(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"lowercase", "ff", 255},
		{"uppercase", "FF", 255},
		{"mixed case", "aB", 171},
		{"leading zeros", "00ff", 255},
		{"spaces tolerated", "a b c", 0xabc},
		{"newlines tolerated", "d\nead\nbee f", 0xdeadbeef},
		{"tabs tolerated", "1\t0", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexInteger(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestParseHexInteger_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "xyz", "12g4", "0x12", "12-34"} {
		_, err := ParseHexInteger(in)
		assert.ErrorIs(t, err, ErrNotHex, "input %q", in)
	}
}

func TestParseHexInteger_LargeModulus(t *testing.T) {
	// A modulus published wrapped across lines, as in RSA challenge lists.
	in := "bd6e 8f56\n0f15 ad12"
	got, err := ParseHexInteger(in)
	require.NoError(t, err)

	want, ok := new(big.Int).SetString("bd6e8f560f15ad12", 16)
	require.True(t, ok)
	assert.Zero(t, got.Cmp(want))
}

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestJSONKeyParser(t *testing.T) {
	parser := &JSONKeyParser{}

	t.Run("decimal strings", func(t *testing.T) {
		path := writeKeyFile(t, `{"e": "65537", "n": "90581"}`)
		key, err := parser.ParsePublicKey(path)
		require.NoError(t, err)
		assert.Equal(t, int64(65537), key.E.Int64())
		assert.Equal(t, int64(90581), key.N.Int64())
	})

	t.Run("hex modulus", func(t *testing.T) {
		path := writeKeyFile(t, `{"e": 17, "n": "0x1f71"}`)
		key, err := parser.ParsePublicKey(path)
		require.NoError(t, err)
		assert.Equal(t, int64(17), key.E.Int64())
		assert.Equal(t, int64(0x1f71), key.N.Int64())
	})

	t.Run("custom field names", func(t *testing.T) {
		custom := &JSONKeyParser{EField: "exponent", NField: "modulus"}
		path := writeKeyFile(t, `{"exponent": "3", "modulus": "33"}`)
		key, err := custom.ParsePublicKey(path)
		require.NoError(t, err)
		assert.Equal(t, int64(3), key.E.Int64())
	})

	t.Run("missing field", func(t *testing.T) {
		path := writeKeyFile(t, `{"e": "65537"}`)
		_, err := parser.ParsePublicKey(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.ParsePublicKey(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

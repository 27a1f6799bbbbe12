package rsakeys

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"unicode"
)

// ErrNotHex is returned by ParseHexInteger for input containing anything
// other than hex digits and whitespace.
var ErrNotHex = errors.New("input is not a hexadecimal string")

// ParseHexInteger converts a string of hexadecimal digits (as moduli are
// commonly published, e.g. wrapped across lines) to an integer. Whitespace
// is tolerated anywhere; any other non-hex character is rejected.
func ParseHexInteger(s string) (*big.Int, error) {
	var digits strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			digits.WriteRune(r)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrNotHex, r)
		}
	}
	if digits.Len() == 0 {
		return nil, fmt.Errorf("%w: no digits", ErrNotHex)
	}

	n, ok := new(big.Int).SetString(digits.String(), 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotHex, s)
	}
	return n, nil
}

// PublicKeyParser defines the interface for loading public keys from
// external sources.
type PublicKeyParser interface {
	// ParsePublicKey loads a public key from a source (e.g. a file path).
	ParsePublicKey(source string) (*PublicKey, error)
}

// JSONKeyParser loads a public key from a JSON file.
type JSONKeyParser struct {
	EField string // field name for the exponent (default: "e")
	NField string // field name for the modulus (default: "n")
}

// ParsePublicKey parses a public key from a JSON file.
//
// Expected format:
//
//	{"e": "65537", "n": "0xdeadbeef..."}
//
// Values may be decimal strings, 0x-prefixed hex strings, or JSON numbers.
func (p *JSONKeyParser) ParsePublicKey(jsonFile string) (*PublicKey, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // preserve large numbers as json.Number instead of float64

	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	eField := p.EField
	if eField == "" {
		eField = "e"
	}
	nField := p.NField
	if nField == "" {
		nField = "n"
	}

	eVal, ok := raw[eField]
	if !ok {
		return nil, fmt.Errorf("missing %q field", eField)
	}
	e, err := parseBigInt(eVal)
	if err != nil {
		return nil, fmt.Errorf("failed to parse exponent: %w", err)
	}

	nVal, ok := raw[nField]
	if !ok {
		return nil, fmt.Errorf("missing %q field", nField)
	}
	n, err := parseBigInt(nVal)
	if err != nil {
		return nil, fmt.Errorf("failed to parse modulus: %w", err)
	}

	return &PublicKey{E: e, N: n}, nil
}

// ParseIntegerString parses a decimal string, a 0x-prefixed hex string,
// or bare hex digits (common for published moduli), in that order.
func ParseIntegerString(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return ParseHexInteger(s[2:])
	}

	z := new(big.Int)
	if _, ok := z.SetString(strings.TrimSpace(s), 10); ok {
		return z, nil
	}
	return ParseHexInteger(s)
}

// parseBigInt parses a big integer from various formats (hex string,
// decimal string, number).
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		return ParseIntegerString(v)

	case json.Number:
		z := new(big.Int)
		if _, ok := z.SetString(string(v), 10); !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", val)
	}
}

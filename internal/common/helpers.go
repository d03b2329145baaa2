package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	SOLDecimals     = 9             // SOL has 9 decimals (lamports)
	LamportsPerSOL  = 1_000_000_000 // 1 SOL = 10^9 lamports
	maxAmountLength = 32
	maxExponent     = 64
)

var (
	// ErrNotPositive is returned when an amount parses but is zero or negative
	ErrNotPositive = errors.New("amount must be greater than zero")
	// ErrTooPrecise is returned when an amount has more fractional digits than lamports allow
	ErrTooPrecise = errors.New("amount has more than 9 decimal places")
	// ErrInvalidFormat is returned when an amount is not a decimal number
	ErrInvalidFormat = errors.New("amount is not a number")
	// ErrOutOfRange is returned when an amount does not fit in lamports
	ErrOutOfRange = errors.New("amount is too large")
)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(lamports, SOLDecimals)
}

// SOLToLamports converts a positive SOL string to lamports without float precision loss.
// Plain decimals ("0.5") and exponent notation ("1e-3") are accepted.
// Zero, negative, malformed, over-precise and overflowing amounts are rejected.
func SOLToLamports(sol string) (uint64, error) {
	s := strings.TrimSpace(sol)
	if len(s) > maxAmountLength {
		return 0, fmt.Errorf("%w: longer than %d characters", ErrOutOfRange, maxAmountLength)
	}
	if strings.HasPrefix(s, "-") {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return 0, ErrNotPositive
		}
	}
	s = strings.TrimPrefix(s, "+")

	s, err := expandExponent(s)
	if err != nil {
		return 0, err
	}

	n, err := parseWithDecimals(s, SOLDecimals)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// expandExponent rewrites "1.5e-3" as "0.0015". Strings without an exponent are returned as is.
func expandExponent(s string) (string, error) {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s, nil
	}

	mantissa, expPart := s[:i], s[i+1:]
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return "", fmt.Errorf("%w: bad exponent %q", ErrInvalidFormat, expPart)
	}

	whole, frac, _ := strings.Cut(mantissa, ".")
	if (whole == "" && frac == "") || !isDigits(whole) || !isDigits(frac) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	digits := whole + frac
	if strings.Trim(digits, "0") == "" {
		return "0", nil
	}
	if exp > maxExponent {
		return "", ErrOutOfRange
	}
	if exp < -maxExponent {
		return "", ErrTooPrecise
	}

	pos := len(whole) + exp
	switch {
	case pos <= 0:
		return "0." + strings.Repeat("0", -pos) + digits, nil
	case pos >= len(digits):
		return digits + strings.Repeat("0", pos-len(digits)), nil
	default:
		return digits[:pos] + "." + digits[pos:], nil
	}
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidFormat)
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	// Trailing zeros beyond lamport precision are harmless
	frac = strings.TrimRight(frac, "0")
	if len(frac) > decimals {
		return 0, ErrTooPrecise
	}
	frac += strings.Repeat("0", decimals-len(frac))

	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Strength is a coarse rating of a password length.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Label returns the short label shown next to the length slider.
func (s Strength) Label() string {
	switch s {
	case StrengthWeak:
		return "弱"
	case StrengthMedium:
		return "中"
	default:
		return "强"
	}
}

// CharacterPool returns the alphabet passwords are drawn from. Lowercase
// letters are always present; the remaining classes are appended in the
// order uppercase, numbers, symbols.
func CharacterPool(uppercase, numbers, symbols bool) string {
	var sb strings.Builder
	sb.WriteString(lowercaseChars)
	if uppercase {
		sb.WriteString(uppercaseChars)
	}
	if numbers {
		sb.WriteString(numberChars)
	}
	if symbols {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

// GeneratePassword draws length characters from pool, independently and with
// replacement. A non-positive length yields an empty string.
func GeneratePassword(src Source, pool string, length int) string {
	if length <= 0 {
		return ""
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = pool[src.IntN(len(pool))]
	}

	return string(result)
}

// StrengthOf rates a password by its length alone.
func StrengthOf(length int) Strength {
	switch {
	case length < 8:
		return StrengthWeak
	case length < 12:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

package models

import "fmt"

// NormalizeMode selects how text and keywords are normalized before matching.
type NormalizeMode string

const (
	// NormalizeLower lowercases only.
	NormalizeLower NormalizeMode = "lower"
	NormalizeNFC   NormalizeMode = "nfc"  // NFC composition, then lowercase
	NormalizeFold  NormalizeMode = "fold" // lowercase and strip accents
)

// ParseNormalizeMode resolves a mode name. An empty name means NormalizeLower.
func ParseNormalizeMode(s string) (NormalizeMode, error) {
	switch NormalizeMode(s) {
	case "", NormalizeLower:
		return NormalizeLower, nil
	case NormalizeNFC:
		return NormalizeNFC, nil
	case NormalizeFold:
		return NormalizeFold, nil
	}
	return "", fmt.Errorf("unknown normalize mode %q (want lower, nfc or fold)", s)
}

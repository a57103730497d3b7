package resolve

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// NormalizeIdentifier canonicalizes a SKU or stock code for comparison:
// surrounding whitespace is trimmed and the result is uppercased. ok is
// false when there is nothing left to compare.
func NormalizeIdentifier(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	return s, true
}

// FingerprintTitle reduces a listing title to a stable lookup form:
// lowercase, punctuation replaced with spaces, whitespace collapsed.
// Titles differing only by casing, punctuation or spacing fingerprint
// identically.
func FingerprintTitle(raw string) (string, bool) {
	fp := strings.ToLower(raw)
	fp = nonAlnum.ReplaceAllString(fp, " ")
	fp = whitespace.ReplaceAllString(fp, " ")
	fp = strings.TrimSpace(fp)
	if fp == "" {
		return "", false
	}
	return fp, true
}

// HashFingerprint returns the SHA-256 hex digest of a title fingerprint,
// used as a compact comparison key.
func HashFingerprint(fp string) (string, bool) {
	if fp == "" {
		return "", false
	}
	sum := sha256.Sum256([]byte(fp))
	return hex.EncodeToString(sum[:]), true
}

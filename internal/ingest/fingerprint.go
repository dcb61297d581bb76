// Package ingest handles statement import: CSV parsing, category mapping,
// and fingerprint-based idempotent upsert into the stored transaction list.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// fingerprintSep joins the normalized components. normalizeText collapses
// all whitespace, so a newline can never survive inside a field.
const fingerprintSep = "\n"

// normalizeText lowercases, trims, and collapses internal whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// normalizeAmount renders a fixed 2-decimal string with half-up rounding.
// Negative zero normalizes to "0.00" so -0.004 and 0.004 agree.
func normalizeAmount(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	if s == "-0.00" {
		s = "0.00"
	}
	return s
}

// Fingerprint derives a stable identity key for a transaction from its
// date, merchant, amount, and description. Category is deliberately
// excluded: re-importing after a mapper improvement must upsert categories
// in place rather than create duplicates.
func Fingerprint(date, merchant string, amount float64, description string) string {
	key := strings.Join([]string{
		strings.TrimSpace(date),
		normalizeText(merchant),
		normalizeAmount(amount),
		normalizeText(description),
	}, fingerprintSep)
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

// FingerprintOf derives the identity key of a stored transaction.
func FingerprintOf(t types.Transaction) string {
	return Fingerprint(t.Date, t.Merchant, t.Amount, t.Description)
}

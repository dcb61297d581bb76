package ingest

import (
	"github.com/google/uuid"

	"github.com/tanaymit/Personal-Finance/internal/types"
)

// UpsertResult reports what an upsert pass did.
type UpsertResult struct {
	Transactions []types.Transaction
	Added        int
	Updated      int
}

// UpsertAll merges incoming transactions into the existing list. An
// incoming row whose fingerprint matches an existing transaction updates
// that transaction's mutable fields in place, preserving its id; everything
// else is appended with a fresh id. The input slices are not mutated.
func UpsertAll(existing, incoming []types.Transaction) UpsertResult {
	merged := make([]types.Transaction, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, t := range merged {
		index[FingerprintOf(t)] = i
	}

	var added, updated int
	for _, in := range incoming {
		key := FingerprintOf(in)
		if i, ok := index[key]; ok {
			cur := &merged[i]
			cur.Merchant = in.Merchant
			cur.Amount = in.Amount
			cur.Category = in.Category
			cur.Description = in.Description
			updated++
			continue
		}
		if in.ID == "" {
			in.ID = uuid.NewString()
		}
		index[key] = len(merged)
		merged = append(merged, in)
		added++
	}

	return UpsertResult{Transactions: merged, Added: added, Updated: updated}
}

// Dedupe collapses transactions sharing a fingerprint, keeping the first
// occurrence. Returns the deduplicated list and the number of rows removed.
// Intended as a one-time cleanup pass over already-stored data.
func Dedupe(txns []types.Transaction) ([]types.Transaction, int) {
	seen := make(map[string]struct{}, len(txns))
	out := make([]types.Transaction, 0, len(txns))
	for _, t := range txns {
		key := FingerprintOf(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out, len(txns) - len(out)
}

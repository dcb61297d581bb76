package analytics

import "github.com/tanaymit/Personal-Finance/internal/types"

// DetailResult is the result of the get_transaction_detail tool. A missing
// id is reported through the Error field, never as a Go error.
type DetailResult struct {
	Transaction *types.Transaction `json:"transaction,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// TransactionDetail looks up a transaction by exact id.
func TransactionDetail(txns []types.Transaction, id string) DetailResult {
	for i := range txns {
		if txns[i].ID == id {
			t := txns[i]
			return DetailResult{Transaction: &t}
		}
	}
	return DetailResult{Error: "Transaction not found"}
}

package addons

import (
	"time"

	"tx-resolver-sol/internal/logic/normalizer"
)

// TransactionStatus 提供交易的出块时间与 slot。
type TransactionStatus struct {
	Timestamp string `json:"timestamp,omitempty"` // RFC 3339（UTC），来源未提供时为空
	Slot      uint64 `json:"slot"`
	Succeeded bool   `json:"succeeded"`
	Err       string `json:"err,omitempty"`
}

func enrichTransactionStatus(tx *normalizer.Transaction) *TransactionStatus {
	out := &TransactionStatus{
		Slot:      tx.Slot,
		Succeeded: tx.Meta.Err == "",
		Err:       tx.Meta.Err,
	}
	if tx.BlockTime != 0 {
		out.Timestamp = time.Unix(tx.BlockTime, 0).UTC().Format(time.RFC3339)
	}
	return out
}

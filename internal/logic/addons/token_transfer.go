package addons

import (
	"tx-resolver-sol/internal/logic/normalizer"
)

// TokenTransferSummary 按 mint 汇总交易前后的净余额变化（原始最小单位）。
type TokenTransferSummary struct {
	NetChanges map[string]int64 `json:"net_changes"`
}

func enrichTokenTransferSummary(tx *normalizer.Transaction) *TokenTransferSummary {
	net := make(map[string]int64)
	for _, tb := range tx.Meta.PreTokenBalances {
		net[tb.Mint.String()] -= int64(tb.Amount)
	}
	for _, tb := range tx.Meta.PostTokenBalances {
		net[tb.Mint.String()] += int64(tb.Amount)
	}
	if len(net) == 0 {
		return nil
	}
	return &TokenTransferSummary{NetChanges: net}
}

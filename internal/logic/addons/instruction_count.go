package addons

import (
	"tx-resolver-sol/internal/logic/normalizer"
)

// InstructionCount 按程序地址统计主指令条数。
type InstructionCount struct {
	Counts map[string]int `json:"counts"`
}

func enrichInstructionCount(tx *normalizer.Transaction) *InstructionCount {
	if len(tx.Message.Instructions) == 0 {
		return nil
	}

	all := tx.AllAccounts()
	counts := make(map[string]int)
	for _, ix := range tx.Message.Instructions {
		if ix.ProgramIDIndex < 0 || ix.ProgramIDIndex >= len(all) {
			continue
		}
		counts[all[ix.ProgramIDIndex].String()]++
	}
	if len(counts) == 0 {
		return nil
	}
	return &InstructionCount{Counts: counts}
}
